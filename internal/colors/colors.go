// Package colors provides the ANSI sequences used to highlight search matches.
package colors

import (
	"strings"

	"github.com/fatih/color"
)

// Name identifies one of the highlight colors.
type Name string

// Supported highlight colors.
const (
	Red    Name = "red"
	Green  Name = "green"
	Yellow Name = "yellow"
	Blue   Name = "blue"
	Purple Name = "purple"
	Cyan   Name = "cyan"
	White  Name = "white"
)

// Names lists every supported color, in declaration order.
var Names = []Name{Red, Green, Yellow, Blue, Purple, Cyan, White}

var attrs = map[Name]color.Attribute{
	Red:    color.FgHiRed,
	Green:  color.FgHiGreen,
	Yellow: color.FgHiYellow,
	Blue:   color.FgHiBlue,
	Purple: color.FgHiMagenta,
	Cyan:   color.FgHiCyan,
	White:  color.FgHiWhite,
}

// End resets all attributes.
const End = "\x1b[0m"

// Start returns the opening sequence for a bold, bright color,
// e.g. Start(Red) == "\x1b[1;91m". Unknown names fall back to Red.
func Start(n Name) string {
	attr, ok := attrs[n]
	if !ok {
		attr = attrs[Red]
	}
	c := color.New(color.Bold, attr)
	// Highlighting is requested explicitly, so ignore NO_COLOR and TTY detection.
	c.EnableColor()
	// Sprint emits start + reset; keep the start sequence only.
	seq := c.Sprint("")
	return seq[:strings.IndexByte(seq, 'm')+1]
}

// Wrap surrounds s with the start sequence of n and End.
func Wrap(n Name, s string) string {
	return Start(n) + s + End
}
