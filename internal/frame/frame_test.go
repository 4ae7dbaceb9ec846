package frame

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLoop_TicksUntilStopped(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(200)
	var ticks atomic.Int64
	require.NoError(t, l.Start(context.Background(), func(time.Time) { ticks.Add(1) }))
	assert.True(t, l.Running())

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, time.Millisecond)

	l.Stop()
	assert.False(t, l.Running())

	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, ticks.Load(), "callback ran after Stop")
}

func TestLoop_StartTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(100)
	require.NoError(t, l.Start(context.Background(), func(time.Time) {}))
	defer l.Stop()

	require.ErrorIs(t, l.Start(context.Background(), func(time.Time) {}), ErrRunning)
}

func TestLoop_StopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(100)
	l.Stop()

	require.NoError(t, l.Start(context.Background(), func(time.Time) {}))
	l.Stop()
	l.Stop()

	// A stopped loop can be started again.
	require.NoError(t, l.Start(context.Background(), func(time.Time) {}))
	l.Stop()
}

func TestLoop_ContextCancelEndsGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop(100)
	require.NoError(t, l.Start(ctx, func(time.Time) {}))

	cancel()
	l.Stop()
}

func TestNewLoop_DefaultRate(t *testing.T) {
	assert.Equal(t, time.Second/DefaultRate, NewLoop(0).Interval())
	assert.Equal(t, 10*time.Millisecond, NewLoop(100).Interval())
}
