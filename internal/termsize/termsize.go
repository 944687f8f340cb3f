// Package termsize reports terminal geometry for output formatting.
package termsize

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultColumns is assumed when the output is not a terminal.
const DefaultColumns = 80

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Columns returns the width of the terminal behind f, or DefaultColumns.
func Columns(f *os.File) int {
	if !IsTerminal(f) {
		return DefaultColumns
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultColumns
	}
	return w
}

// Separator returns a line of dots spanning columns minus margin, never
// shorter than one dot.
func Separator(columns, margin int) string {
	n := columns - margin
	if n < 1 {
		n = 1
	}
	return strings.Repeat(".", n)
}
