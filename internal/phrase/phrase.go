// Package phrase turns a wall-clock time into Swedish words, rounded to the
// nearest five minutes: 16:45 is "kvart i fem", 16:32 is "halv fyra".
package phrase

import (
	"strings"
	"time"
)

const (
	step     = 5 * 60
	halfStep = step / 2
	halfHour = 30 * 60
	fullHour = 60 * 60
)

// Phrase is the display state of one tick: three short strings, any of which
// (except Hour) may be empty.
type Phrase struct {
	Hour   string
	Link   string
	Minute string
}

// Resolve maps hour [0,23], minute [0,59] and second [0,59] to a phrase.
// Values outside those ranges are a caller error and are not checked.
func Resolve(hour, minute, second int) Phrase {
	h, m := Bucket(hour, minute, second)

	hourPhrase := HourName(h)
	if isHalf(m) {
		hourPhrase = HalfPrefix + hourPhrase
	}

	return Phrase{
		Hour:   hourPhrase,
		Link:   Link(m),
		Minute: Minute(m),
	}
}

// FromTime resolves the phrase of t in its own location.
func FromTime(t time.Time) Phrase {
	return Resolve(t.Hour(), t.Minute(), t.Second())
}

// Quantize rounds the seconds elapsed in the hour to the nearest five minute
// boundary. Ties round up, so the result is in [0,3600].
func Quantize(minute, second int) int {
	s := minute*60 + second

	d := s % step
	if d < halfStep {
		s -= d
	} else {
		s += step - d
	}

	return s
}

// Bucket returns the hour index [0,11] the phrase is spoken relative to and
// the five minute bucket [0,11].
func Bucket(hourOfDay, minute, second int) (int, int) {
	h := hourOfDay % 12
	s := Quantize(minute, second)

	if s > halfHour {
		h = (h + 1) % 12
	}

	if s == fullHour {
		s = 0
	}

	return h, s / step
}

// isHalf reports whether bucket m is spoken relative to the half hour.
func isHalf(m int) bool {
	return m >= 5 && m <= 7
}

// Lines returns the phrase in on-screen order, top to bottom.
func (p Phrase) Lines() [3]string {
	return [3]string{p.Minute, p.Link, p.Hour}
}

// String joins the non-empty parts in reading order.
func (p Phrase) String() string {
	parts := make([]string, 0, 3)
	for _, line := range p.Lines() {
		if line != "" {
			parts = append(parts, line)
		}
	}

	return strings.Join(parts, " ")
}
