package fortune

import (
	"context"
	"log/slog"

	"github.com/starford/fortuna/internal/parser"
)

// NoQuoteMessage is returned by PickFromAllFiles when no file has content.
const NoQuoteMessage = "Oops, no quote. Are fortune cookies empty?"

// PickFromOneFile picks a random file from the top level of the corpus and
// returns a random entry from it. A degenerate pick is replaced by the
// non-degenerate entry closest to the end of the file, or by the first
// entry when there is none.
func (s *Service) PickFromOneFile(_ context.Context) (string, error) {
	paths, err := s.store.ListFlat()
	if err != nil {
		return "", err
	}
	path := paths[s.index(len(paths))]
	content, err := s.store.Read(path)
	if err != nil {
		return "", err
	}

	entries := parser.Split(content)
	i := s.index(len(entries))
	s.logger.Debug("pick: one file",
		slog.String("path", path),
		slog.Int("entry", i),
		slog.Int("entries", len(entries)))
	return pickEntry(entries, i), nil
}

// PickFromAllFiles picks a random entry from every file of the corpus,
// subdirectories included. A degenerate pick is replaced by the whole
// content of the last file that has any, scanning backwards; the first
// file is used last, and NoQuoteMessage when it is degenerate as well.
func (s *Service) PickFromAllFiles(_ context.Context) (string, error) {
	paths, err := s.store.ListRecursive()
	if err != nil {
		return "", err
	}
	files, err := s.load(paths)
	if err != nil {
		return "", err
	}

	contents := make([]string, len(files))
	var entries []string
	for i, f := range files {
		contents[i] = f.Content
		entries = append(entries, parser.Split(f.Content)...)
	}

	i := s.index(len(entries))
	s.logger.Debug("pick: all files",
		slog.Int("files", len(files)),
		slog.Int("entry", i),
		slog.Int("entries", len(entries)))
	return pickAcrossFiles(contents, entries, i), nil
}

func pickEntry(entries []string, i int) string {
	if !parser.IsDegenerate(entries[i]) {
		return entries[i]
	}
	for j := len(entries) - 1; j >= 1; j-- {
		if !parser.IsDegenerate(entries[j]) {
			return entries[j]
		}
	}
	return entries[0]
}

// pickAcrossFiles falls back at file granularity, not entry granularity.
func pickAcrossFiles(contents, entries []string, i int) string {
	if !parser.IsDegenerate(entries[i]) {
		return entries[i]
	}
	for j := len(contents) - 1; j >= 1; j-- {
		if !parser.IsDegenerate(contents[j]) {
			return contents[j]
		}
	}
	if parser.IsDegenerate(contents[0]) {
		return NoQuoteMessage
	}
	return contents[0]
}
