package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_TrailingDelimiter(t *testing.T) {
	entries := Split("Quote A\n%\nQuote B\n%\n")
	require.Len(t, entries, 3)
	assert.Equal(t, "Quote A", entries[0])
	assert.Equal(t, "Quote B", entries[1])
	assert.Equal(t, "", entries[2])
}

func TestSplit_NoDelimiter(t *testing.T) {
	text := "A lone quote\nspanning two lines.\n"
	entries := Split(text)
	require.Len(t, entries, 1)
	assert.Equal(t, text, entries[0])
}

func TestSplit_EmptyText(t *testing.T) {
	entries := Split("")
	assert.Equal(t, []string{""}, entries)
}

func TestSplit_PreservesInternalFormatting(t *testing.T) {
	entries := Split("  indented\n\tline\n%\n%\nnext")
	require.Len(t, entries, 2)
	assert.Equal(t, "  indented\n\tline", entries[0])
	// "%\nnext" keeps its leading percent: only "\n%\n" is a delimiter.
	assert.Equal(t, "%\nnext", entries[1])
}

func TestSplit_PercentWithoutNewlinesIsNotADelimiter(t *testing.T) {
	entries := Split("100% sure\n%50 off")
	assert.Len(t, entries, 1)
}

func TestSplitJoin_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"%",
		"\n%\n",
		"\n%\n\n%\n",
		"a\n%\nb",
		"Quote A\n%\nQuote B\n%\n",
		"\n%\nleading",
		"unicode ✓ ünïcödé\n%\n日本語\n",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Join(Split(in)), "round trip of %q", in)
	}
}

func TestIsDegenerate(t *testing.T) {
	cases := map[string]bool{
		"":      true,
		"\n":    true,
		"x":     true,
		"é":     true,
		"ab":    false,
		"\n\n":  false,
		"quote": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsDegenerate(in), "IsDegenerate(%q)", in)
	}
}
