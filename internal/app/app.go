package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the marquee application.
type Options struct {
	Config config.Config
	Logger zerolog.Logger
}

// Run starts the dataset load, then boots the wall until the context is
// cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	if err := opts.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	store := &state.Store{}

	// The load races the first paint; the UI shows a spinner until done
	// closes.
	done := StartLoad(ctx, store, LoadOptions{
		Path:     opts.Config.DataPath,
		Classify: opts.Config.Classification,
		Logger:   logging.Component(opts.Logger, "loader"),
	})

	uiOpts := ui.Options{
		Context: ctx,
		Store:   store,
		Loaded:  done,
		Config:  opts.Config,
		Logger:  logging.Component(opts.Logger, "ui"),
	}
	return ui.Run(uiOpts)
}
