package internal

import (
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/fortuna/internal/colors"
	"github.com/starford/fortuna/internal/storage"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Corpus CorpusConfig      `yaml:"corpus"`
	Output OutputConfig      `yaml:"output"`
	Wait   WaitConfig        `yaml:"wait"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Corpus.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Wait.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// CorpusConfig names the fortune directory used when FORTUNES_DIR is unset.
type CorpusConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the corpus configuration.
func (c *CorpusConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// ResolvedDir returns the corpus directory after applying FORTUNES_DIR.
func (c *CorpusConfig) ResolvedDir() string {
	return storage.ResolveDir(c.Dir)
}

// OutputConfig controls how quotes and matches are rendered.
type OutputConfig struct {
	// SeparatorMargin is subtracted from the terminal width for "." separators.
	SeparatorMargin int    `yaml:"separator_margin"`
	HighlightColor  string `yaml:"highlight_color"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	names := make([]any, len(colors.Names))
	for i, n := range colors.Names {
		names[i] = string(n)
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.SeparatorMargin, validation.Min(0)),
		validation.Field(&c.HighlightColor, validation.Required, validation.In(names...)),
	)
}

// WaitConfig holds the default delay of the wait command.
type WaitConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// Validate validates the wait configuration.
func (c *WaitConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Interval, validation.Required, validation.Min(time.Millisecond)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelWarn,
			LogFormat: LogFormatText,
		},
		Corpus: CorpusConfig{
			Dir: storage.DefaultDir,
		},
		Output: OutputConfig{
			SeparatorMargin: 10,
			HighlightColor:  string(colors.Red),
		},
		Wait: WaitConfig{
			Interval: 5 * time.Second,
		},
	}
}
