// Package models defines the domain types for fortuna.
package models

// FortuneFile is one decoded file of the corpus.
type FortuneFile struct {
	Path    string `json:"path"`
	Content string `json:"-"`
}

// Match is a single search hit.
type Match struct {
	Path   string `json:"path"`
	Index  int    `json:"index"` // entry position within the file
	Entry  string `json:"entry"`
	Output string `json:"output"` // entry as printed, possibly highlighted
}
