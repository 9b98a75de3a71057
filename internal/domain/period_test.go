package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPeriod(t *testing.T, showers []Shower, meteors []Meteor) Period {
	t.Helper()
	start, end := at(t, 22, 55), at(t, 1, 20)
	l := &eventLog{t: t}
	l.add(start, PeriodStart{}).
		add(start, PeriodDate{Date: testDate}).
		add(start, Showers{Showers: showers}).
		add(start, AreasCounted{Counts: []AreaCount{{Stars: 10, Area: 14}}}).
		add(start, Clouds{Percent: 0}).
		add(start, FieldEvent{Field: Field{RA: 290, Dec: 55}})
	for _, m := range meteors {
		l.add(at(t, 23, 30), MeteorEvent{Meteor: m})
	}
	l.add(end, PeriodEnd{})

	b := NewSessionBuilder(IMOAreas)
	l.register(b)
	session, err := b.Finish()
	require.NoError(t, err)
	return session.Periods()[0]
}

func TestPeriod_Tallies(t *testing.T) {
	p := buildPeriod(t, []Shower{Perseids, KappaCygnids, Sporadic}, []Meteor{
		{Shower: Sporadic, Magnitude: 30},
		{Shower: Perseids, Magnitude: 25},
		{Shower: Perseids, Magnitude: 10},
		{Shower: Sporadic, Magnitude: 45},
		{Shower: Perseids, Magnitude: -15},
	})

	tallies := p.Tallies()
	require.Len(t, tallies, 3)

	assert.Equal(t, Perseids, tallies[0].Shower)
	assert.Equal(t, 3, tallies[0].Count)
	perseids := tallies[0].Distribution
	assert.Equal(t, 0.5, perseids.Count(-2))
	assert.Equal(t, 0.5, perseids.Count(-1))
	assert.Equal(t, 1.0, perseids.Count(1))
	assert.Equal(t, 0.5, perseids.Count(2))
	assert.Equal(t, 0.5, perseids.Count(3))

	assert.Equal(t, KappaCygnids, tallies[1].Shower)
	assert.Zero(t, tallies[1].Count)
	assert.Equal(t, Distribution{}, tallies[1].Distribution)

	assert.Equal(t, Sporadic, tallies[2].Shower)
	assert.Equal(t, 2, tallies[2].Count)
	assert.Equal(t, 1.0, tallies[2].Distribution.Count(3))
	assert.Equal(t, 0.5, tallies[2].Distribution.Count(4))
	assert.Equal(t, 0.5, tallies[2].Distribution.Count(5))
}

func TestPeriod_TalliesSumToMeteorCount(t *testing.T) {
	p := buildPeriod(t, []Shower{Perseids, Sporadic}, []Meteor{
		{Shower: Sporadic, Magnitude: 30},
		{Shower: Perseids, Magnitude: 35},
		{Shower: Perseids, Magnitude: 80},
		{Shower: Perseids, Magnitude: -90},
	})

	var count int
	var tenths int
	for _, tally := range p.Tallies() {
		count += tally.Count
		for _, v := range tally.Distribution {
			tenths += v
		}
	}
	assert.Equal(t, len(p.Meteors()), count)
	assert.Equal(t, 10*len(p.Meteors()), tenths)
}

func TestPeriod_ID(t *testing.T) {
	a := buildPeriod(t, []Shower{Perseids}, nil)
	b := buildPeriod(t, []Shower{Perseids, Sporadic}, []Meteor{{Shower: Sporadic, Magnitude: 30}})

	assert.Len(t, a.ID(), 16)
	assert.Equal(t, a.ID(), b.ID(), "meteors and showers do not affect identity")

	start, end := at(t, 21, 0), at(t, 22, 0)
	l := &eventLog{t: t}
	l.add(start, PeriodStart{}).
		add(start, PeriodDate{Date: testDate}).
		add(start, AreasCounted{Counts: []AreaCount{{Stars: 10, Area: 14}}}).
		add(start, Clouds{Percent: 0}).
		add(start, FieldEvent{Field: Field{RA: 290, Dec: 55}}).
		add(end, PeriodEnd{})
	builder := NewSessionBuilder(IMOAreas)
	l.register(builder)
	session, err := builder.Finish()
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), session.Periods()[0].ID())
}
