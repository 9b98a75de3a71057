package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/meteoraid/internal/domain"
)

func ts(t *testing.T, h, m int) domain.Timestamp {
	t.Helper()
	v, err := domain.NewTimestamp(h, m)
	require.NoError(t, err)
	return v
}

func TestMidpoint(t *testing.T) {
	t.Run("same evening", func(t *testing.T) {
		mid, ok := Midpoint("12 Aug 2019", "", ts(t, 22, 37), ts(t, 23, 37))
		require.True(t, ok)
		assert.Equal(t, time.Date(2019, 8, 12, 23, 7, 0, 0, time.UTC), mid)
	})

	t.Run("across midnight", func(t *testing.T) {
		mid, ok := Midpoint("12 Aug 2019", DefaultDateLayout, ts(t, 22, 55), ts(t, 1, 21))
		require.True(t, ok)
		assert.Equal(t, time.Date(2019, 8, 13, 0, 8, 0, 0, time.UTC), mid)
	})

	t.Run("custom layout", func(t *testing.T) {
		mid, ok := Midpoint("2019-08-13", "2006-01-02", ts(t, 0, 15), ts(t, 0, 30))
		require.True(t, ok)
		assert.Equal(t, time.Date(2019, 8, 13, 0, 22, 30, 0, time.UTC), mid)
	})

	t.Run("unparseable date", func(t *testing.T) {
		_, ok := Midpoint("the night of the Perseids", "", ts(t, 22, 0), ts(t, 23, 0))
		assert.False(t, ok)
	})
}

func TestSolarLongitude(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		lo, hi   float64
		from, to [2]int
	}{
		// Perseid maximum sits near 140 degrees.
		{"perseids", "12 Aug 2019", 139, 141, [2]int{22, 0}, [2]int{2, 0}},
		// December solstice.
		{"solstice", "22 Dec 2019", 269.5, 271, [2]int{0, 0}, [2]int{2, 0}},
		// Geminid maximum near 262 degrees.
		{"geminids", "14 Dec 2020", 261.5, 264, [2]int{20, 0}, [2]int{4, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SolarLongitude(tt.date, "", ts(t, tt.from[0], tt.from[1]), ts(t, tt.to[0], tt.to[1]))
			require.True(t, ok)
			assert.GreaterOrEqual(t, got, tt.lo)
			assert.LessOrEqual(t, got, tt.hi)
		})
	}

	_, ok := SolarLongitude("not a date", "", ts(t, 22, 0), ts(t, 23, 0))
	assert.False(t, ok)
}

func TestSolarLongitudeAt_Range(t *testing.T) {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := SolarLongitudeAt(start)
	wraps := 0
	for d := 1; d <= 366; d += 5 {
		got := SolarLongitudeAt(start.AddDate(0, 0, d))
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
		if got < prev {
			wraps++
		}
		prev = got
	}
	assert.Equal(t, 1, wraps, "longitude wraps once a year, at the March equinox")
}
