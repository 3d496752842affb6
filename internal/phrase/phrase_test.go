package phrase_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lucax88x/ordklocka/internal/phrase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		hour, minute, second int
		expected             phrase.Phrase
	}{
		{4, 57, 30, phrase.Phrase{Hour: "fem"}},
		{4, 32, 0, phrase.Phrase{Hour: "halv fyra"}},
		{4, 2, 30, phrase.Phrase{Hour: "fyra", Link: "över", Minute: "fem"}},
		{4, 2, 29, phrase.Phrase{Hour: "fyra"}},
		{0, 0, 0, phrase.Phrase{Hour: "tolv"}},
		{12, 0, 0, phrase.Phrase{Hour: "tolv"}},
		{16, 15, 0, phrase.Phrase{Hour: "fyra", Link: "över", Minute: "kvart"}},
		{16, 45, 0, phrase.Phrase{Hour: "fem", Link: "i", Minute: "kvart"}},
		{16, 25, 0, phrase.Phrase{Hour: "halv fyra", Link: "i", Minute: "fem"}},
		{16, 35, 0, phrase.Phrase{Hour: "halv fem", Link: "över", Minute: "fem"}},
		{16, 40, 0, phrase.Phrase{Hour: "fem", Link: "i", Minute: "tjugo"}},
		{23, 55, 0, phrase.Phrase{Hour: "tolv", Link: "i", Minute: "fem"}},
		{11, 59, 59, phrase.Phrase{Hour: "tolv"}},
		{10, 20, 0, phrase.Phrase{Hour: "tio", Link: "över", Minute: "tjugo"}},
		{10, 10, 0, phrase.Phrase{Hour: "tio", Link: "över", Minute: "tio"}},
		{10, 50, 0, phrase.Phrase{Hour: "elva", Link: "i", Minute: "tio"}},
	}

	for _, test := range tests {
		name := fmt.Sprintf("%02d:%02d:%02d", test.hour, test.minute, test.second)
		t.Run(name, func(t *testing.T) {
			got := phrase.Resolve(test.hour, test.minute, test.second)

			assert.Equal(t, test.expected, got)
		})
	}
}

func TestQuantizeRoundsTiesUp(t *testing.T) {
	assert.Equal(t, 0, phrase.Quantize(2, 29))
	assert.Equal(t, 300, phrase.Quantize(2, 30))
	assert.Equal(t, 3600, phrase.Quantize(57, 30))
	assert.Equal(t, 1800, phrase.Quantize(32, 0))
}

func TestBucketHourAdvancesOnlyPastHalf(t *testing.T) {
	h, m := phrase.Bucket(4, 30, 0)
	assert.Equal(t, 4, h)
	assert.Equal(t, 6, m)

	h, m = phrase.Bucket(4, 32, 30)
	assert.Equal(t, 5, h)
	assert.Equal(t, 7, m)
}

func TestResolveCoversWholeDay(t *testing.T) {
	names := phrase.HourNames()

	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			for second := 0; second < 60; second++ {
				h, m := phrase.Bucket(hour, minute, second)
				require.GreaterOrEqual(t, h, 0)
				require.Less(t, h, 12)
				require.GreaterOrEqual(t, m, 0)
				require.Less(t, m, phrase.Buckets)

				got := phrase.Resolve(hour, minute, second)

				half := m >= 5 && m <= 7
				assert.Equal(t, half, strings.HasPrefix(got.Hour, phrase.HalfPrefix))
				assert.Contains(t, names, strings.TrimPrefix(got.Hour, phrase.HalfPrefix))
				assert.Equal(t, phrase.Link(m), got.Link)
				assert.Equal(t, phrase.Minute(m), got.Minute)
			}
		}
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	first := phrase.Resolve(9, 44, 12)
	second := phrase.Resolve(9, 44, 12)

	assert.Equal(t, first, second)
}

func TestFromTime(t *testing.T) {
	at := time.Date(2024, time.March, 3, 16, 44, 50, 0, time.UTC)

	assert.Equal(t, "kvart i fem", phrase.FromTime(at).String())
}

func TestPhraseLines(t *testing.T) {
	p := phrase.Resolve(16, 35, 0)

	assert.Equal(t, [3]string{"fem", "över", "halv fem"}, p.Lines())
	assert.Equal(t, "fem över halv fem", p.String())
	assert.Equal(t, "tre", phrase.Resolve(3, 0, 0).String())
}

func TestTablesWrapIndex(t *testing.T) {
	assert.Equal(t, "tolv", phrase.HourName(12))
	assert.Equal(t, "elva", phrase.HourName(-1))
	assert.Equal(t, "", phrase.Link(0))
	assert.Equal(t, "kvart", phrase.Minute(9))
}
