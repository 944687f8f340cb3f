// Package storage defines the read-only fortune corpus abstraction.
package storage

// Provider is the interface for corpus file access.
type Provider interface {
	// Root returns the corpus directory.
	Root() string
	// ListFlat returns the files directly inside the corpus directory.
	ListFlat() ([]string, error)
	// ListRecursive returns every file under the corpus directory.
	ListRecursive() ([]string, error)
	// Read returns the decoded UTF-8 content of the file at path.
	Read(path string) (string, error)
}
