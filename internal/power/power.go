package power

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/distatus/battery"
	"github.com/lucax88x/ordklocka/internal/clock"
)

const cacheFor = time.Minute

// Cadence decides how long to wait between ticks.
type Cadence interface {
	Interval(ctx context.Context) time.Duration
}

type Constant time.Duration

func (c Constant) Interval(_ context.Context) time.Duration {
	return time.Duration(c)
}

type Reader interface {
	Read() (percentage float64, discharging bool, err error)
}

type SystemBattery struct{}

func (SystemBattery) Read() (float64, bool, error) {
	batteries, err := battery.GetAll()

	if err != nil && len(batteries) == 0 {
		return 0, false, fmt.Errorf("power: could not get battery info. %w", err)
	}

	for _, b := range batteries {
		if b == nil || b.Full == 0 {
			continue
		}

		return (b.Current / b.Full) * 100, b.State.String() == "Discharging", nil
	}

	return 0, false, errors.New("power: has no battery")
}

type Settings struct {
	Normal    time.Duration
	Low       time.Duration
	Threshold float64
}

func (s Settings) Enabled() bool {
	return s.Threshold > 0 && s.Low > s.Normal
}

// Aware stretches the interval while the battery discharges below a threshold.
type Aware struct {
	logger   *slog.Logger
	reader   Reader
	clock    clock.Clock
	settings Settings

	mu       sync.Mutex
	cachedAt time.Time
	low      bool
}

func NewAware(logger *slog.Logger, reader Reader, clock clock.Clock, settings Settings) *Aware {
	return &Aware{
		logger:   logger,
		reader:   reader,
		clock:    clock,
		settings: settings,
	}
}

func NewCadence(logger *slog.Logger, clock clock.Clock, settings Settings) Cadence {
	if !settings.Enabled() {
		return Constant(settings.Normal)
	}

	return NewAware(logger, SystemBattery{}, clock, settings)
}

func (a *Aware) Interval(ctx context.Context) time.Duration {
	if a.isLow(ctx) {
		return a.settings.Low
	}

	return a.settings.Normal
}

func (a *Aware) isLow(ctx context.Context) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.clock.Now()
	if !a.cachedAt.IsZero() && now.Sub(a.cachedAt) < cacheFor {
		return a.low
	}

	a.cachedAt = now

	percentage, discharging, err := a.reader.Read()
	if err != nil {
		a.logger.DebugContext(ctx, "power: could not read battery, using normal cadence", slog.Any("error", err))
		a.low = false
		return false
	}

	low := discharging && percentage < a.settings.Threshold
	if low != a.low {
		a.logger.InfoContext(
			ctx,
			"power: cadence changed",
			slog.Bool("low", low),
			slog.Float64("percentage", percentage),
		)
	}

	a.low = low
	return low
}
