// Package parser splits decoded fortune files into quote entries.
package parser

import (
	"strings"
	"unicode/utf8"
)

// Delimiter separates two quote entries inside a fortune file.
const Delimiter = "\n%\n"

// Split partitions text into its quote entries in file order.
// Entries are not trimmed; trailing delimiters produce empty entries and
// text without a delimiter yields a single entry holding all of it.
func Split(text string) []string {
	return strings.Split(text, Delimiter)
}

// Join is the inverse of Split.
func Join(entries []string) string {
	return strings.Join(entries, Delimiter)
}

// IsDegenerate reports whether an entry carries no real content: it is
// empty or a single stray character such as a newline.
func IsDegenerate(entry string) bool {
	return utf8.RuneCountInString(entry) <= 1
}
