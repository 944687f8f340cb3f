package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/fortuna/internal"
	"github.com/starford/fortuna/internal/fortune"
	pkgconfig "github.com/starford/fortuna/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadIfExists(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		if err := cfg.App.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", lvl, err)
		}
	}
	return cfg, nil
}

func options(cmd *cli.Command) ([]internal.Option, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return []internal.Option{internal.WithConfig(cfg)}, nil
}

func runFortune(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.Fortune(ctx, int(cmd.Int("howmany")), opts...)
}

func runDefault(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.Fortune(ctx, 1, opts...)
}

func runDay(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.Day(ctx, int(cmd.Int("howmany")), opts...)
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("search expects exactly one QUERY argument")
	}
	search := fortune.SearchOptions{
		Query:       cmd.Args().First(),
		Insensitive: cmd.Bool("insensitive"),
		Highlight:   cmd.Bool("colors"),
		FirstOnly:   cmd.Bool("single"),
		Regex:       cmd.Bool("regex"),
	}
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.Search(ctx, search, opts...)
}

func runWait(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	interval := internal.WaitInterval(
		uint64(cmd.Uint("days")),
		uint64(cmd.Uint("hours")),
		uint64(cmd.Uint("mins")),
		uint64(cmd.Uint("secs")),
		uint64(cmd.Uint("millis")),
		uint64(cmd.Uint("nanos")),
	)
	return internal.Wait(ctx, interval, cmd.Bool("watch"), opts...)
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.ServeMCP(ctx, opts...)
}

func howManyFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "howmany",
		Usage: "Number of random fortunes",
		Value: 1,
	}
}

func waitFlags() []cli.Flag {
	units := []struct{ name, usage string }{
		{"days", "Wait in days"},
		{"hours", "Wait in hours"},
		{"mins", "Wait in minutes"},
		{"secs", "Wait in seconds"},
		{"millis", "Wait in milliseconds"},
		{"nanos", "Wait in nanoseconds"},
	}
	flags := make([]cli.Flag, 0, len(units)+1)
	for _, u := range units {
		flags = append(flags, &cli.UintFlag{Name: u.name, Usage: u.usage})
	}
	return append(flags, &cli.BoolFlag{
		Name:  "watch",
		Usage: "Show a new fortune as soon as the fortunes directory changes",
	})
}

func main() {
	cmd := &cli.Command{
		Name:   "fortuna",
		Usage:  "Print and search fortune cookie quotes",
		Action: runDefault,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Path to config file (optional)",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Override the configured log level (debug, info, warn, error)",
				Sources: cli.EnvVars("APP_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "fortune",
				Usage:  "Fortune anytime you want",
				Flags:  []cli.Flag{howManyFlag()},
				Action: runFortune,
			},
			{
				Name:      "search",
				Usage:     "Search for a keyword in cookie files",
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "insensitive", Aliases: []string{"i"}, Usage: "Case-insensitive search for the query"},
					&cli.BoolFlag{Name: "colors", Aliases: []string{"c"}, Usage: "Add colors on the matching queries"},
					&cli.BoolFlag{Name: "single", Aliases: []string{"s"}, Usage: "Only print the first match"},
					&cli.BoolFlag{Name: "regex", Aliases: []string{"r"}, Usage: "Treat the query as a regular expression"},
				},
				Action: runSearch,
			},
			{
				Name:   "day",
				Usage:  "Fortune of a day, drawn from every file",
				Flags:  []cli.Flag{howManyFlag()},
				Action: runDay,
			},
			{
				Name:   "wait",
				Usage:  "Wait given amount of time between fortunes in an infinite loop",
				Flags:  waitFlags(),
				Action: runWait,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the fortune corpus to MCP clients over stdio",
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
