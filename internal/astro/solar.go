// Package astro computes the astronomical quantities IMO reports carry.
package astro

import (
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/couchcryptid/meteoraid/internal/domain"
)

// DefaultDateLayout matches dates written like "12 Aug 2019".
const DefaultDateLayout = "2 Jan 2006"

// Midpoint returns the UT instant halfway through a period that starts on the
// given date. End times earlier than start are taken to fall on the next day.
func Midpoint(date, layout string, start, end domain.Timestamp) (time.Time, bool) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	day, err := time.ParseInLocation(layout, strings.TrimSpace(date), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	begin := day.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute)
	half := time.Duration(end.Sub(start)) * time.Minute / 2
	return begin.Add(half), true
}

// SolarLongitude returns the apparent geocentric longitude of the Sun, in
// degrees within [0, 360), at the midpoint of the period. It returns false
// when the date does not match layout.
func SolarLongitude(date, layout string, start, end domain.Timestamp) (float64, bool) {
	mid, ok := Midpoint(date, layout, start, end)
	if !ok {
		return 0, false
	}
	return SolarLongitudeAt(mid), true
}

// SolarLongitudeAt returns the apparent solar longitude, in degrees, at t.
func SolarLongitudeAt(t time.Time) float64 {
	T := base.J2000Century(julian.TimeToJD(t.UTC()))
	return solar.ApparentLongitude(T).Mod1().Deg()
}
