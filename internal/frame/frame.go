// Package frame provides the recurring per-frame callback that drives the
// wall's animation.
package frame

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultRate is the display refresh rate the loop targets.
const DefaultRate = 60

// ErrRunning is returned by Start when the loop is already running.
var ErrRunning = errors.New("frame loop already running")

// Loop re-arms a callback once per frame until stopped.
type Loop struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoop returns a loop ticking rate times per second. A non-positive rate
// uses DefaultRate.
func NewLoop(rate int) *Loop {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Loop{interval: time.Second / time.Duration(rate)}
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Start launches the loop goroutine and returns immediately. fn runs once per
// tick on the loop goroutine until ctx is cancelled or Stop is called.
func (l *Loop) Start(ctx context.Context, fn func(time.Time)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done

	go func() {
		defer close(done)

		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				fn(now)
			}
		}
	}()
	return nil
}

// Running reports whether the loop goroutine is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

// Stop cancels the loop and waits for the goroutine to exit. It is safe to
// call more than once; only the first call has an effect.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
