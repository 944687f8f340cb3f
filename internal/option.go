package internal

import (
	"io"
	"log/slog"
	"os"

	"github.com/starford/fortuna/internal/fortune"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	index  fortune.IndexFunc
	// columns overrides terminal width detection when > 0.
	columns int

	logger *slog.Logger
	svc    *fortune.Service
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithOutput redirects quote output and log output.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *application) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithInput sets the reader the MCP server consumes requests from.
func WithInput(stdin io.Reader) Option {
	return func(a *application) {
		a.stdin = stdin
	}
}

// WithIndexFunc replaces the random index generator.
func WithIndexFunc(fn fortune.IndexFunc) Option {
	return func(a *application) {
		a.index = fn
	}
}

// WithColumns fixes the width used for separator lines.
func WithColumns(n int) Option {
	return func(a *application) {
		a.columns = n
	}
}

func newApplication(opts ...Option) *application {
	app := &application{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}
