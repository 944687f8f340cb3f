// Package apperr defines the sentinel errors shared across fortuna packages.
package apperr

import "errors"

var (
	// ErrNoDirectory means the corpus directory could not be opened.
	ErrNoDirectory = errors.New("no fortunes directory was found")
	// ErrEmptyCorpus means the corpus directory holds no fortune files.
	ErrEmptyCorpus = errors.New("fortunes directory is empty")
	// ErrRead means a fortune file could not be read.
	ErrRead = errors.New("read fortune file")
	// ErrInvalidPattern means a regex search pattern failed to compile.
	ErrInvalidPattern = errors.New("invalid search pattern")
	// ErrConflict means mutually exclusive search options were combined.
	ErrConflict = errors.New("conflicting search options")
)
