package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

const Time = "15:04:05"
const HoursMinutes = "15:04"

type SystemClock struct{}

func NewSystemClock() Clock {
	return &SystemClock{}
}

func (r *SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a settable clock, used to render a given time or in tests.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *Fixed) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = now
}

func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}

// ParseTimeOfDay parses "15:04" or "15:04:05" onto the date of day.
func ParseTimeOfDay(value string, day time.Time) (time.Time, error) {
	var parsed time.Time
	var err error

	for _, layout := range []string{Time, HoursMinutes} {
		parsed, err = time.Parse(layout, value)
		if err == nil {
			return time.Date(
				day.Year(), day.Month(), day.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), 0,
				day.Location(),
			), nil
		}
	}

	return time.Time{}, err
}
