package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
)

// Period is a validated, immutable observing period.
type Period struct {
	startTime         Timestamp
	endTime           Timestamp
	date              string
	teff              float64
	limitingMagnitude float64
	field             Field
	cloudFactor       float64
	showers           []Shower
	meteors           []Meteor
}

// StartTime returns when the period began.
func (p Period) StartTime() Timestamp { return p.startTime }

// EndTime returns when the period ended.
func (p Period) EndTime() Timestamp { return p.endTime }

// Date returns the free-text date given by the observer.
func (p Period) Date() string { return p.date }

// Teff returns the effective observing time in hours, breaks excluded.
func (p Period) Teff() float64 { return p.teff }

// LimitingMagnitude returns the duration-weighted limiting magnitude.
func (p Period) LimitingMagnitude() float64 { return p.limitingMagnitude }

// Field returns the observed field centre.
func (p Period) Field() Field { return p.field }

// CloudFactor returns the correction factor F (1.0 for a clear sky).
func (p Period) CloudFactor() float64 { return p.cloudFactor }

// Showers returns a copy of the declared showers, in declaration order.
func (p Period) Showers() []Shower { return slices.Clone(p.showers) }

// Meteors returns a copy of the observed meteors, in observation order.
func (p Period) Meteors() []Meteor { return slices.Clone(p.meteors) }

// ID returns a deterministic identifier derived from the period's date, time
// span and field, so the same observation always maps to the same key.
func (p Period) ID() string {
	input := fmt.Sprintf("%s|%s|%s|%.4f|%.4f", p.date, p.startTime, p.endTime, p.field.RA, p.field.Dec)
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:8])
}

// ShowerTally is the meteor count and magnitude distribution of one shower.
type ShowerTally struct {
	Shower       Shower
	Count        int
	Distribution Distribution
}

// Tallies returns one tally per declared shower, in declaration order.
// Showers without meteors get a zero tally.
func (p Period) Tallies() []ShowerTally {
	tallies := make([]ShowerTally, len(p.showers))
	index := make(map[Shower]int, len(p.showers))
	for i, s := range p.showers {
		tallies[i].Shower = s
		index[s] = i
	}
	for _, m := range p.meteors {
		i, ok := index[m.Shower]
		if !ok {
			continue
		}
		tallies[i].Count++
		tallies[i].Distribution.Add(m.Magnitude)
	}
	return tallies
}

// Session is the ordered, non-empty list of periods of one observation run.
type Session struct {
	periods []Period
}

// Periods returns a copy of the session's periods in observation order.
func (s Session) Periods() []Period { return slices.Clone(s.periods) }

// Len returns the number of periods.
func (s Session) Len() int { return len(s.periods) }
