// Package testutil provides shared test helpers for building fortune corpora.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/fortuna/internal/storage"
)

// File is one fortune file to lay down in a test corpus.
type File struct {
	Name    string // relative to the corpus root, may contain subdirectories
	Content string
}

// Corpus writes files into a fresh temporary directory and returns the
// directory together with a storage.Provider rooted at it. Listing order
// follows file names, so tests choose names to fix the enumeration order.
func Corpus(t *testing.T, files ...File) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		WriteFile(t, dir, f.Name, []byte(f.Content))
	}
	return dir, storage.NewFS(dir)
}

// WriteFile writes raw bytes to name under dir, creating parent directories.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}
