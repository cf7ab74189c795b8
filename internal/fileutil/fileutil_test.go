package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirNotEmpty(t *testing.T) {
	dir := t.TempDir()

	notEmpty, err := DirNotEmpty(dir)
	require.NoError(t, err)
	assert.False(t, notEmpty)

	// Hidden and backup files do not count.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old~"), nil, 0o644))
	notEmpty, err = DirNotEmpty(dir)
	require.NoError(t, err)
	assert.False(t, notEmpty)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "data"), nil, 0o644))
	notEmpty, err = DirNotEmpty(dir)
	require.NoError(t, err)
	assert.True(t, notEmpty)

	_, err = DirNotEmpty(filepath.Join(dir, "absent"))
	assert.Error(t, err)
}

func TestIsExecutableFile(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))
	assert.True(t, IsExecutableFile(script))

	plain := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0o644))
	assert.False(t, IsExecutableFile(plain))

	assert.False(t, IsExecutableFile(dir))
}

func TestIsValidFilename(t *testing.T) {
	for _, valid := range []string{"cred", "db-password", "a.b", "with space"} {
		assert.True(t, IsValidFilename(valid), "input %q", valid)
	}
	for _, invalid := range []string{"", ".", "..", "a/b", "a\x00b"} {
		assert.False(t, IsValidFilename(invalid), "input %q", invalid)
	}
}

func TestIsYAMLFile(t *testing.T) {
	assert.True(t, IsYAMLFile("conditions.yaml"))
	assert.True(t, IsYAMLFile("conditions.yml"))
	assert.False(t, IsYAMLFile("conditions.json"))
	assert.False(t, IsYAMLFile(""))
}
