// Package internal provides the application initialization and the command runners.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/fortuna/internal/colors"
	"github.com/starford/fortuna/internal/fortune"
	"github.com/starford/fortuna/internal/mcpserver"
	"github.com/starford/fortuna/internal/storage"
	"github.com/starford/fortuna/internal/termsize"
	"github.com/starford/fortuna/internal/watch"
)

// Version is reported by the MCP server.
var Version = "dev"

// clearScreen moves the cursor home and clears screen and scrollback.
const clearScreen = "\x1b[H\x1b[2J\x1b[3J"

// setup applies opts, installs the logger and builds the fortune service.
func setup(opts ...Option) (*application, error) {
	app := newApplication(opts...)

	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := NewLogger(app.stderr, cfg.App)
	slog.SetDefault(logger)
	app.logger = logger

	dir := cfg.Corpus.ResolvedDir()
	logger.Debug("Configuration loaded",
		slog.String("corpus_dir", dir),
		slog.String("highlight_color", cfg.Output.HighlightColor),
		slog.Duration("wait_interval", cfg.Wait.Interval),
		slog.String("log_level", cfg.App.LogLevel.String()))

	app.svc = fortune.NewService(storage.NewFS(dir),
		fortune.WithIndexFunc(app.index),
		fortune.WithHighlightColor(colors.Name(cfg.Output.HighlightColor)),
		fortune.WithLogger(logger),
	)
	return app, nil
}

// Fortune prints howMany random quotes, each from a random top-level file.
func Fortune(ctx context.Context, howMany int, opts ...Option) error {
	app, err := setup(opts...)
	if err != nil {
		return err
	}
	return app.printMany(ctx, howMany, app.svc.PickFromOneFile)
}

// Day prints howMany random quotes drawn from the whole corpus.
func Day(ctx context.Context, howMany int, opts ...Option) error {
	app, err := setup(opts...)
	if err != nil {
		return err
	}
	return app.printMany(ctx, howMany, app.svc.PickFromAllFiles)
}

// Search prints every quote matching search.
func Search(ctx context.Context, search fortune.SearchOptions, opts ...Option) error {
	// Reject conflicting flags before touching the corpus.
	if err := search.Validate(); err != nil {
		return err
	}
	app, err := setup(opts...)
	if err != nil {
		return err
	}
	_, err = app.svc.Find(ctx, app.stdout, search)
	return err
}

// WaitInterval returns the first non-zero unit among days, hours, minutes,
// seconds, milliseconds and nanoseconds, or zero when all are zero.
// Values too large for a time.Duration are clamped to the maximum.
func WaitInterval(days, hours, mins, secs, millis, nanos uint64) time.Duration {
	switch {
	case days > 0:
		return scale(days, 24*time.Hour)
	case hours > 0:
		return scale(hours, time.Hour)
	case mins > 0:
		return scale(mins, time.Minute)
	case secs > 0:
		return scale(secs, time.Second)
	case millis > 0:
		return scale(millis, time.Millisecond)
	case nanos > 0:
		return scale(nanos, time.Nanosecond)
	}
	return 0
}

func scale(n uint64, unit time.Duration) time.Duration {
	if n > uint64(math.MaxInt64/int64(unit)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(n) * unit
}

// Wait shows a random quote, sleeps for interval and repeats until ctx is
// cancelled or the process receives SIGINT/SIGTERM. A zero interval uses
// the configured default. With watchCorpus, a change to the corpus shows
// a new quote right away.
func Wait(ctx context.Context, interval time.Duration, watchCorpus bool, opts ...Option) error {
	app, err := setup(opts...)
	if err != nil {
		return err
	}
	if interval <= 0 {
		interval = app.config.Wait.Interval
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	refresh := make(chan struct{}, 1)

	if watchCorpus {
		g.Go(func() error {
			return watch.Watch(gCtx, app.svc.Root(), 0, app.logger, func(_, _ string) {
				select {
				case refresh <- struct{}{}:
				default:
				}
			})
		})
	}

	g.Go(func() error {
		return app.displayLoop(gCtx, interval, refresh)
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			app.logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	return g.Wait()
}

// ServeMCP serves the MCP tools over the configured stdin/stdout.
func ServeMCP(ctx context.Context, opts ...Option) error {
	app, err := setup(opts...)
	if err != nil {
		return err
	}
	srv := mcpserver.New(app.svc, Version)
	app.logger.Info("MCP server starting", slog.String("corpus_dir", app.svc.Root()))
	errLog := slog.NewLogLogger(app.logger.Handler(), slog.LevelError)
	return srv.Serve(ctx, app.stdin, app.stdout, errLog)
}

func (a *application) printMany(ctx context.Context, howMany int, pick func(context.Context) (string, error)) error {
	multiple := howMany > 1
	sep := termsize.Separator(a.width(), a.config.Output.SeparatorMargin)

	if multiple {
		fmt.Fprintln(a.stdout, sep)
	}
	for n := howMany; n > 0; n-- {
		quote, err := pick(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, quote)
		if n > 1 {
			fmt.Fprintln(a.stdout, sep)
		}
	}
	if multiple {
		fmt.Fprintln(a.stdout, sep)
	}
	return nil
}

func (a *application) displayLoop(ctx context.Context, interval time.Duration, refresh <-chan struct{}) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.clear()
	for {
		quote, err := a.svc.PickFromOneFile(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, quote)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-refresh:
			ticker.Reset(interval)
		}
		a.clear()
	}
}

// clear wipes the screen when stdout is a terminal.
func (a *application) clear() {
	if f, ok := a.stdout.(*os.File); ok && termsize.IsTerminal(f) {
		fmt.Fprint(f, clearScreen)
	}
}

func (a *application) width() int {
	if a.columns > 0 {
		return a.columns
	}
	if f, ok := a.stdout.(*os.File); ok {
		return termsize.Columns(f)
	}
	return termsize.DefaultColumns
}
