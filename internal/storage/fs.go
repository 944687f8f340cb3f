package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/starford/fortuna/internal/apperr"
)

const (
	// EnvDir overrides the corpus directory.
	EnvDir = "FORTUNES_DIR"
	// DefaultDir is used when neither the environment nor config names a directory.
	DefaultDir = "fortunes"
)

// ResolveDir returns $FORTUNES_DIR when it is set, otherwise fallback,
// otherwise DefaultDir.
func ResolveDir(fallback string) string {
	if dir, ok := os.LookupEnv(EnvDir); ok {
		return dir
	}
	if fallback != "" {
		return fallback
	}
	return DefaultDir
}

// FS implements Provider backed by the local file system.
// Listing order is whatever the file system hands back through
// os.ReadDir and filepath.WalkDir, which sort entries by name.
type FS struct {
	root string
}

// NewFS creates a provider rooted at dir. The directory is not checked
// here; a missing directory surfaces as apperr.ErrNoDirectory on listing.
func NewFS(dir string) *FS {
	return &FS{root: dir}
}

// Root returns the corpus directory.
func (f *FS) Root() string {
	return f.root
}

// ListFlat returns the non-directory entries directly inside the root.
func (f *FS) ListFlat() ([]string, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperr.ErrNoDirectory, f.root, err)
	}
	var out []string
	for _, e := range entries {
		p := filepath.Join(f.root, e.Name())
		if isDir(p, e) {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", apperr.ErrEmptyCorpus, f.root)
	}
	return out, nil
}

// ListRecursive walks the root and returns every non-directory file.
func (f *FS) ListRecursive() ([]string, error) {
	// A trailing separator makes WalkDir follow a symlinked root.
	root := f.root
	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		root += string(filepath.Separator)
	}

	var out []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if isDir(p, d) {
			return nil
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperr.ErrNoDirectory, f.root, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", apperr.ErrEmptyCorpus, f.root)
	}
	return out, nil
}

// isDir reports whether d is a directory, following symbolic links.
// Links to directories are skipped by listings, not descended into.
func isDir(p string, d fs.DirEntry) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// Read opens path and returns its decoded content.
func (f *FS) Read(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", apperr.ErrRead, path, err)
	}
	defer file.Close()

	content, err := Decode(file)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", apperr.ErrRead, path, err)
	}
	return content, nil
}
