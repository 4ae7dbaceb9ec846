package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/review"
	"github.com/five82/marquee/internal/state"
)

// LoadOptions configure the one-shot dataset load.
type LoadOptions struct {
	Path     string
	Classify bool
	Logger   zerolog.Logger
}

// StartLoad launches a goroutine that loads the dataset exactly once and
// records the outcome in store. The returned channel is closed when the store
// holds the result. Failures are logged and leave an empty dataset; they are
// not retried.
func StartLoad(ctx context.Context, store *state.Store, opts LoadOptions) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		load(ctx, store, opts)
	}()
	return done
}

func load(ctx context.Context, store *state.Store, opts LoadOptions) {
	start := time.Now()

	reviews, err := review.Load(ctx, opts.Path)
	if err != nil {
		opts.Logger.Error().Err(err).Str("path", opts.Path).Msg("dataset load failed")
		store.Update(review.Dataset{}, err)
		return
	}

	ds := review.NewDataset(reviews, opts.Classify)
	total, flagged := ds.Counts()
	opts.Logger.Info().
		Str("path", opts.Path).
		Int("reviews", total).
		Int("flagged", flagged).
		Bool("classified", opts.Classify).
		Dur("elapsed", time.Since(start)).
		Msg("dataset loaded")
	store.Update(ds, nil)
}
