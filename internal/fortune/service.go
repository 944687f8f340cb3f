// Package fortune picks and searches quotes in a fortune corpus.
package fortune

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/starford/fortuna/internal/colors"
	"github.com/starford/fortuna/internal/models"
	"github.com/starford/fortuna/internal/storage"
)

// IndexFunc returns a uniformly distributed index in [0, n). n is always > 0.
type IndexFunc func(n int) int

// Option configures a Service.
type Option func(*Service)

// WithIndexFunc replaces the random index generator.
func WithIndexFunc(fn IndexFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.index = fn
		}
	}
}

// WithHighlightColor sets the color used to mark literal search matches.
func WithHighlightColor(name colors.Name) Option {
	return func(s *Service) {
		s.color = name
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service coordinates corpus access, random selection and search.
// It is meant for one caller at a time.
type Service struct {
	store  storage.Provider
	index  IndexFunc
	color  colors.Name
	logger *slog.Logger
}

// NewService creates a service over store.
func NewService(store storage.Provider, opts ...Option) *Service {
	s := &Service{
		store:  store,
		index:  rand.IntN,
		color:  colors.Red,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the corpus directory the service reads from.
func (s *Service) Root() string {
	return s.store.Root()
}

// Files returns every file of the corpus, recursively.
func (s *Service) Files() ([]string, error) {
	return s.store.ListRecursive()
}

// load decodes every file in paths, failing on the first read error.
func (s *Service) load(paths []string) ([]models.FortuneFile, error) {
	files := make([]models.FortuneFile, 0, len(paths))
	for _, p := range paths {
		content, err := s.store.Read(p)
		if err != nil {
			return nil, err
		}
		files = append(files, models.FortuneFile{Path: p, Content: content})
	}
	return files, nil
}
