package fortune

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/fortuna/internal/apperr"
	"github.com/starford/fortuna/internal/colors"
	"github.com/starford/fortuna/internal/models"
	"github.com/starford/fortuna/internal/parser"
)

// SearchOptions selects the search mode and its flags.
type SearchOptions struct {
	Query       string
	Insensitive bool
	Highlight   bool
	FirstOnly   bool
	Regex       bool
}

// Validate rejects option combinations no search mode can honor.
func (o SearchOptions) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Highlight,
			validation.When(o.Regex, validation.Empty.Error("coloring the regex matches isn't supported"))),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrConflict, err)
	}
	return nil
}

// Find validates opts and runs the matching search mode.
func (s *Service) Find(ctx context.Context, w io.Writer, opts SearchOptions) ([]models.Match, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Regex {
		return s.SearchRegex(ctx, w, opts.Query, opts.Insensitive, opts.FirstOnly)
	}
	return s.Search(ctx, w, opts.Query, opts.Insensitive, opts.Highlight, opts.FirstOnly)
}

// Search writes every entry containing pattern to w, each followed by a
// "%" line. With caseInsensitive both sides are lower-cased before the
// comparison; with highlight the matched text, in its original case, is
// wrapped in color codes. firstOnly stops after the first match.
func (s *Service) Search(_ context.Context, w io.Writer, pattern string, caseInsensitive, highlight, firstOnly bool) ([]models.Match, error) {
	files, err := s.loadFlat()
	if err != nil {
		return nil, err
	}

	needle := pattern
	if caseInsensitive {
		needle = foldCase(pattern)
	}

	var matches []models.Match
	for _, f := range files {
		for i, entry := range parser.Split(f.Content) {
			hay := entry
			if caseInsensitive {
				hay = foldCase(entry)
			}
			pos := strings.Index(hay, needle)
			if pos < 0 {
				continue
			}

			out := entry
			if highlight {
				end := pos + len(needle)
				out = entry[:pos] + colors.Wrap(s.color, entry[pos:end]) + entry[end:]
			}
			m := models.Match{Path: f.Path, Index: i, Entry: entry, Output: out}
			if err := writeMatch(w, m); err != nil {
				return matches, err
			}
			matches = append(matches, m)
			if firstOnly {
				return matches, nil
			}
		}
	}

	s.logger.Debug("search: done", slog.String("pattern", pattern), slog.Int("matches", len(matches)))
	return matches, nil
}

// SearchRegex writes every entry matching pattern to w, each followed by a
// "%" line. The pattern is compiled before the corpus is read. With
// caseInsensitive the pattern text itself is lower-cased, together with
// each entry, so "[A-Z]" behaves as "[a-z]".
func (s *Service) SearchRegex(_ context.Context, w io.Writer, pattern string, caseInsensitive, firstOnly bool) ([]models.Match, error) {
	expr := pattern
	if caseInsensitive {
		// Class names are lowered too; RE2 rejects \p{greek}.
		expr = strings.ToLower(pattern)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidPattern, err)
	}

	files, err := s.loadFlat()
	if err != nil {
		return nil, err
	}

	var matches []models.Match
	for _, f := range files {
		for i, entry := range parser.Split(f.Content) {
			hay := entry
			if caseInsensitive {
				hay = strings.ToLower(entry)
			}
			if !re.MatchString(hay) {
				continue
			}

			m := models.Match{Path: f.Path, Index: i, Entry: entry, Output: entry}
			if err := writeMatch(w, m); err != nil {
				return matches, err
			}
			matches = append(matches, m)
			if firstOnly {
				return matches, nil
			}
		}
	}

	s.logger.Debug("search: regex done", slog.String("pattern", pattern), slog.Int("matches", len(matches)))
	return matches, nil
}

// loadFlat reads the whole top level of the corpus before any output is
// produced, so a read failure never leaves partial results behind.
func (s *Service) loadFlat() ([]models.FortuneFile, error) {
	paths, err := s.store.ListFlat()
	if err != nil {
		return nil, err
	}
	return s.load(paths)
}

func writeMatch(w io.Writer, m models.Match) error {
	if _, err := fmt.Fprintf(w, "%s\n%%\n", m.Output); err != nil {
		return fmt.Errorf("write match: %w", err)
	}
	return nil
}

// foldCase lower-cases s without changing its byte length: a rune whose
// lower-case form encodes to a different number of bytes is kept as is.
// Byte offsets into the result are therefore valid offsets into s.
func foldCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if l := unicode.ToLower(r); l != r && utf8.RuneLen(l) == size {
			b.WriteRune(l)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
