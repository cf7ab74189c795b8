package fileutil

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// IsDir returns true if path is a directory. Symlinks are followed.
func IsDir(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return stat.IsDir()
}

// FileExists returns true if file exists.
func FileExists(file string) bool {
	_, err := os.Lstat(file)
	return err == nil
}

// IsSymlink returns true if path is a symbolic link.
func IsSymlink(path string) bool {
	stat, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeSymlink != 0
}

// IsExecutableFile returns true if path is a regular file with any
// executable bit set.
func IsExecutableFile(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return stat.Mode().IsRegular() && stat.Mode().Perm()&0o111 != 0
}

// IsNonEmptyFile returns true if path is a regular file with size > 0.
func IsNonEmptyFile(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return stat.Mode().IsRegular() && stat.Size() > 0
}

// DirNotEmpty returns whether dir contains at least one entry, ignoring
// hidden files and editor backup files.
func DirNotEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
			continue
		}
		return true, nil
	}
	return false, nil
}

const (
	yamlExtension = ".yaml"
	ymlExtension  = ".yml"
)

// ValidYAMLExtensions contains valid YAML extensions.
var ValidYAMLExtensions = []string{yamlExtension, ymlExtension}

// IsYAMLFile checks if a file has a valid YAML extension (.yaml or .yml).
func IsYAMLFile(filename string) bool {
	if filename == "" {
		return false
	}
	return slices.Contains(ValidYAMLExtensions, filepath.Ext(filename))
}

// IsValidFilename reports whether name is usable as a single path
// component: non-empty, no slashes, not "." or "..".
func IsValidFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\x00") {
		return false
	}
	return len(name) < 256
}
