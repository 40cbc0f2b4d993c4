package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAllDeletionDisabledKeepsFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a", "sub/b.txt": "b"})
	paths := []string{filepath.Join(root, "a.txt"), filepath.Join(root, "sub", "b.txt")}

	removed, cleanErr := cleanAll(osRemover{}, false, paths, testLogger(t))

	assert.NoError(t, cleanErr)
	assert.Equal(t, 0, removed)
	for _, p := range paths {
		assert.FileExists(t, p)
	}
}

func TestCleanAllDeletionDisabledNeverCallsRemover(t *testing.T) {
	remover := NewMockRemover()

	removed, cleanErr := cleanAll(remover, false, []string{"/folder1/a", "/folder1/b"}, testLogger(t))

	assert.NoError(t, cleanErr)
	assert.Equal(t, 0, removed)
	assert.Len(t, remover.Removed, 0)
}

func TestCleanAllDeletesFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a", "sub/b.txt": "b"})
	paths := []string{filepath.Join(root, "a.txt"), filepath.Join(root, "sub", "b.txt")}

	removed, cleanErr := cleanAll(osRemover{}, true, paths, testLogger(t))

	assert.NoError(t, cleanErr)
	assert.Equal(t, 2, removed)
	for _, p := range paths {
		assert.NoFileExists(t, p)
	}
	assert.DirExists(t, filepath.Join(root, "sub"))
}

func TestCleanAllStopsAtFirstFailure(t *testing.T) {
	remover := NewMockRemover()
	removeErr := errors.New("permission denied")
	remover.FailOn["/folder1/b"] = removeErr

	removed, cleanErr := cleanAll(remover, true, []string{"/folder1/a", "/folder1/b", "/folder1/c"}, testLogger(t))

	assert.Equal(t, 1, removed)
	assert.Equal(t, []string{"/folder1/a"}, remover.Removed)
	var cleanupErr *CleanupError
	assert.ErrorAs(t, cleanErr, &cleanupErr)
	assert.Equal(t, "/folder1/b", cleanupErr.Path)
	assert.ErrorIs(t, cleanErr, removeErr)
}

func TestCleanAllMissingFileIsCleanupError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.txt")

	_, cleanErr := cleanAll(osRemover{}, true, []string{missing}, testLogger(t))

	var cleanupErr *CleanupError
	assert.ErrorAs(t, cleanErr, &cleanupErr)
	assert.ErrorIs(t, cleanErr, os.ErrNotExist)
}
