package tick_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lucax88x/ordklocka/internal/clock"
	"github.com/lucax88x/ordklocka/internal/power"
	"github.com/lucax88x/ordklocka/internal/tick"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDelayAlignsToSecond(t *testing.T) {
	now := time.Date(2024, time.May, 1, 8, 0, 0, int(300*time.Millisecond), time.UTC)

	assert.Equal(t, 700*time.Millisecond, tick.Delay(now, time.Second))
	assert.Equal(t, 4700*time.Millisecond, tick.Delay(now, 5*time.Second))
	assert.Equal(t, 250*time.Millisecond, tick.Delay(now, 250*time.Millisecond))
	assert.Equal(t, 700*time.Millisecond, tick.Delay(now, 0))
}

func TestJobTicksUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	var ticks atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	job := tick.NewJob(
		newLogger(),
		clock.NewSystemClock(),
		power.Constant(10*time.Millisecond),
		func(_ context.Context, _ time.Time) {
			if ticks.Add(1) == 3 {
				cancel()
			}
		},
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		job.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not stop")
	}

	assert.GreaterOrEqual(t, ticks.Load(), int32(3))
}

func TestJobSurvivesPanickingHandler(t *testing.T) {
	defer goleak.VerifyNone(t)

	var ticks atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	job := tick.NewJob(
		newLogger(),
		clock.NewSystemClock(),
		power.Constant(5*time.Millisecond),
		func(_ context.Context, _ time.Time) {
			if ticks.Add(1) >= 2 {
				cancel()
			}
			panic("boom")
		},
	)

	job.Run(ctx)

	assert.GreaterOrEqual(t, ticks.Load(), int32(2))
}
