package domain

import "fmt"

const minutesPerDay = 24 * 60

// Timestamp is a wall-clock time of day without a date.
type Timestamp struct {
	hour   int
	minute int
}

// NewTimestamp validates and builds a Timestamp.
func NewTimestamp(hour, minute int) (Timestamp, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Timestamp{}, fmt.Errorf("invalid time %02d:%02d", hour, minute)
	}
	return Timestamp{hour: hour, minute: minute}, nil
}

// TimestampFromShorthand parses the HHMM integer notation, e.g. 2237 -> 22:37
// and 107 -> 01:07.
func TimestampFromShorthand(n int) (Timestamp, error) {
	if n < 0 {
		return Timestamp{}, fmt.Errorf("invalid time %d", n)
	}
	return NewTimestamp(n/100, n%100)
}

// Hour returns the hour of day (0-23).
func (t Timestamp) Hour() int { return t.hour }

// Minute returns the minute of the hour (0-59).
func (t Timestamp) Minute() int { return t.minute }

func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t Timestamp) minutes() int {
	return t.hour*60 + t.minute
}

// Sub returns the minutes elapsed from other to t. When t is earlier in the
// day than other, t is taken to be on the following day, so the result is
// always in [0, 1439].
func (t Timestamp) Sub(other Timestamp) int {
	m := t.minutes()
	if m < other.minutes() {
		m += minutesPerDay
	}
	return m - other.minutes()
}

// InclusiveBetween reports whether t lies on the closed arc from lo to hi.
// hi and t are each rolled to the next day when their hour is before lo's hour.
func (t Timestamp) InclusiveBetween(lo, hi Timestamp) bool {
	hiHour := hi.hour
	if hi.hour < lo.hour {
		hiHour += 24
	}
	tHour := t.hour
	if t.hour < lo.hour {
		tHour += 24
	}
	loTotal := lo.minutes()
	tTotal := tHour*60 + t.minute
	hiTotal := hiHour*60 + hi.minute
	return loTotal <= tTotal && tTotal <= hiTotal
}

// Break is an interval during which observation was suspended.
type Break struct {
	Start Timestamp
	End   Timestamp
}

// EffectiveMinutes returns the minutes between start and end minus every
// break lying inside that span. Breaks entirely outside are ignored; a break
// with only one endpoint inside fails with ErrInvalidBreaks.
func EffectiveMinutes(start, end Timestamp, breaks []Break) (int, error) {
	total := end.Sub(start)
	for _, b := range breaks {
		startInside := b.Start.InclusiveBetween(start, end)
		endInside := b.End.InclusiveBetween(start, end)
		if startInside != endInside {
			return 0, ErrInvalidBreaks
		}
		if startInside {
			total -= b.End.Sub(b.Start)
		}
	}
	return total, nil
}
