// Package sysinfo provides the system-query primitives the condition
// probes are built on: small readers for /proc and /sys pseudo-files,
// cgroup introspection, identity lookup and hardware state. All reads are
// point-in-time snapshots without locking.
package sysinfo

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// ReadVirtualFile reads a small pseudo-file fully into memory. A missing
// file is reported as fs.ErrNotExist so callers can distinguish "absent"
// from real I/O failures.
func ReadVirtualFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadVirtualLine reads a pseudo-file and strips the trailing newline.
func ReadVirtualLine(path string) (string, error) {
	s, err := ReadVirtualFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, "\n"), nil
}

// IsNotExist reports whether err means the queried file was absent.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
