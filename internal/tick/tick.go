// Package tick delivers the periodic ticks the display is redrawn on.
package tick

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lucax88x/ordklocka/internal/clock"
	"github.com/lucax88x/ordklocka/internal/power"
)

type Handler func(ctx context.Context, now time.Time)

// Job calls its handler once per interval on a single goroutine, so at most
// one tick is handled at a time.
type Job struct {
	logger  *slog.Logger
	clock   clock.Clock
	handler Handler

	mu      sync.Mutex
	cadence power.Cadence
}

func NewJob(
	logger *slog.Logger,
	clock clock.Clock,
	cadence power.Cadence,
	handler Handler,
) *Job {
	return &Job{
		logger:  logger,
		clock:   clock,
		handler: handler,
		cadence: cadence,
	}
}

// SetCadence replaces the cadence, taking effect after the next tick.
func (j *Job) SetCadence(cadence power.Cadence) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.cadence = cadence
}

func (j *Job) interval(ctx context.Context) time.Duration {
	j.mu.Lock()
	cadence := j.cadence
	j.mu.Unlock()

	return cadence.Interval(ctx)
}

// Run ticks right away and then on every interval until ctx is done.
func (j *Job) Run(ctx context.Context) {
	j.logger.InfoContext(ctx, "tick: starting")

	j.tick(ctx)

	timer := time.NewTimer(Delay(j.clock.Now(), j.interval(ctx)))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.InfoContext(ctx, "tick: stopped")
			return
		case <-timer.C:
			j.tick(ctx)
			timer.Reset(Delay(j.clock.Now(), j.interval(ctx)))
		}
	}
}

func (j *Job) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			j.logger.ErrorContext(ctx, "tick: recovered from panic in handler", slog.Any("panic", r))
		}
	}()

	j.handler(ctx, j.clock.Now())
}

// Delay returns how long to wait for the next tick. Whole second intervals
// are aligned to the second boundary so the display flips with the clock.
func Delay(now time.Time, interval time.Duration) time.Duration {
	if interval <= 0 {
		interval = time.Second
	}

	if interval%time.Second != 0 {
		return interval
	}

	return now.Truncate(time.Second).Add(interval).Sub(now)
}
