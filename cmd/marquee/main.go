package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logging"
)

// Populated at build time via -ldflags.
var version = "dev"

type flags struct {
	ConfigPath string
	DataPath   string
	Columns    int64
	Variant    string
	LogLevel   string
	LogFile    string
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newCommand(&flags{}).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 1
	}
	return 0
}

func newCommand(f *flags) *cli.Command {
	return &cli.Command{
		Name:    "marquee",
		Usage:   "Scroll a wall of user reviews in the terminal",
		Version: buildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file (.toml, .yaml or .yml)",
				Sources:     cli.EnvVars("MARQUEE_CONFIG"),
				Value:       config.DefaultPath(),
				Destination: &f.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data",
				Aliases:     []string{"d"},
				Usage:       "path to the reviews CSV (author and content columns)",
				Sources:     cli.EnvVars("MARQUEE_DATA"),
				Destination: &f.DataPath,
			},
			&cli.IntFlag{
				Name:        "columns",
				Usage:       "initial column count (1-4)",
				Sources:     cli.EnvVars("MARQUEE_COLUMNS"),
				Destination: &f.Columns,
			},
			&cli.StringFlag{
				Name:        "variant",
				Usage:       "presentation preset (classified, cycling)",
				Sources:     cli.EnvVars("MARQUEE_VARIANT"),
				Destination: &f.Variant,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("MARQUEE_LOG_LEVEL"),
				Destination: &f.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("MARQUEE_LOG_FILE"),
				Destination: &f.LogFile,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(f.ConfigPath)
			if err != nil {
				return err
			}
			applyFlags(&cfg, c, f)

			logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return fmt.Errorf("setup logger: %w", err)
			}
			defer closer()

			logger.Info().
				Str("version", version).
				Str("data", cfg.DataPath).
				Str("variant", string(cfg.Variant)).
				Int("columns", cfg.Columns).
				Msg("starting")

			return app.Run(ctx, app.Options{Config: cfg, Logger: logger})
		},
	}
}

// applyFlags overlays explicitly set flags on the file config. A variant
// flag re-applies that variant's preset.
func applyFlags(cfg *config.Config, c *cli.Command, f *flags) {
	if c.IsSet("variant") {
		cfg.Variant = config.Variant(strings.ToLower(strings.TrimSpace(f.Variant)))
		cfg.ApplyVariant()
	}
	if c.IsSet("data") {
		cfg.DataPath = f.DataPath
	}
	if c.IsSet("columns") {
		cfg.Columns = int(f.Columns)
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = strings.ToLower(f.LogLevel)
	}
	if c.IsSet("log-file") {
		cfg.LogFile = f.LogFile
	}
}

func buildVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			return mv
		}
	}
	return version
}
