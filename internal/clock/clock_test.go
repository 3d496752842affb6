package clock_test

import (
	"testing"
	"time"

	"github.com/lucax88x/ordklocka/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedAdvance(t *testing.T) {
	start := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)
	fixed := clock.NewFixed(start)

	fixed.Advance(90 * time.Second)

	assert.Equal(t, start.Add(90*time.Second), fixed.Now())
}

func TestParseTimeOfDay(t *testing.T) {
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	withSeconds, err := clock.ParseTimeOfDay("16:44:50", day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 1, 16, 44, 50, 0, time.UTC), withSeconds)

	withoutSeconds, err := clock.ParseTimeOfDay("07:05", day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 1, 7, 5, 0, 0, time.UTC), withoutSeconds)

	_, err = clock.ParseTimeOfDay("quarter past", day)
	assert.Error(t, err)
}
