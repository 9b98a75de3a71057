package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/meteoraid/internal/domain"
)

const firstPeriod = `period_start << 2237
date("12 Aug 2019")
clouds(0)
showers(PER, ANT, KCG, SPO)
areas(area14(11))
fieldC(336, 52.3)
2307
areas(area14(9))
clouds(10)
per(3.5)
period_end << 2337`

func TestInterpreter_CheckpointLines(t *testing.T) {
	in := NewInterpreter(domain.IMOAreas)
	err := in.ExecuteLines(`2237
	period_start -- and a comment
	date("12 Aug 2019")
	clouds(0)
	showers(PER, ANT, KCG, SPO)
	areas(area14(11))
	fieldC(336, 52.3)
	2337
	period_end`)
	require.NoError(t, err)

	session, err := in.Session()
	require.NoError(t, err)
	p := session.Periods()[0]
	assert.Equal(t, 1.0, p.Teff())
	assert.Len(t, p.Showers(), 4)
	assert.Equal(t, 1.0, p.CloudFactor())
	assert.Equal(t, 5.64, p.LimitingMagnitude())
}

func TestInterpreter_InlineCheckpoints(t *testing.T) {
	in := NewInterpreter(domain.IMOAreas)
	err := in.ExecuteLines(`period_start << 2237
	date("12 Aug 2019")
	clouds(0)
	showers(PER, ANT, KCG, SPO)
	areas(area14(11))
	fieldC(336, 52.3)
	period_end << 2337`)
	require.NoError(t, err)

	session, err := in.Session()
	require.NoError(t, err)
	p := session.Periods()[0]
	assert.Equal(t, 1.0, p.Teff())
	assert.Len(t, p.Showers(), 4)
	assert.Equal(t, 1.0, p.CloudFactor())
}

func TestInterpreter_NoCheckpoint(t *testing.T) {
	in := NewInterpreter(domain.IMOAreas)
	err := in.ExecuteLines(`period_start
	date("12 Aug 2019")
	period_end << 2337`)
	require.ErrorIs(t, err, ErrNoTimeCheckpoint)
	assert.Contains(t, err.Error(), "line 1")
}

func TestInterpreter_ChangingConditions(t *testing.T) {
	in := NewInterpreter(domain.IMOAreas)
	require.NoError(t, in.ExecuteLines(firstPeriod))

	session, err := in.Session()
	require.NoError(t, err)
	p := session.Periods()[0]
	assert.Equal(t, 1.0, p.Teff())
	assert.Len(t, p.Showers(), 4)
	assert.Equal(t, 1.05, p.CloudFactor())
	assert.Equal(t, 5.52, p.LimitingMagnitude())
	require.Len(t, p.Meteors(), 1)
	assert.Equal(t, domain.Meteor{Shower: domain.Perseids, Magnitude: 35}, p.Meteors()[0])
}

func TestInterpreter_TwoPeriods(t *testing.T) {
	in := NewInterpreter(domain.IMOAreas)
	require.NoError(t, in.ExecuteLines(firstPeriod+`

	new_period

	0015
	period_start
	date("13 Aug 2019")
	clouds(5)
	showers(PER, SPO)
	areas(area14(10), area7(10))
	fieldC(298, 56)
	period_end << 0030
	`))
	assert.Equal(t, 1, in.Periods())

	session, err := in.Session()
	require.NoError(t, err)
	require.Equal(t, 2, session.Len())

	first := session.Periods()[0]
	assert.Equal(t, 1.0, first.Teff())
	assert.Equal(t, 1.05, first.CloudFactor())
	assert.Equal(t, 5.52, first.LimitingMagnitude())
	assert.Len(t, first.Meteors(), 1)

	second := session.Periods()[1]
	assert.Equal(t, 0.25, second.Teff())
	assert.Equal(t, "13 Aug 2019", second.Date())
	assert.Equal(t, []domain.Shower{domain.Perseids, domain.Sporadic}, second.Showers())
}

func TestInterpreter_InlineCheckpointMovesLaterStatements(t *testing.T) {
	in := NewInterpreter(domain.IMOAreas)
	require.NoError(t, in.ExecuteLines(`2237
	period_start
	date("12 Aug 2019")
	clouds(0)
	showers(PER, ANT, KCG, SPO) << 2238
	areas(area14(11))
	fieldC(336, 52.3)
	2337
	period_end`))

	_, err := in.Session()
	assert.ErrorIs(t, err, domain.ErrLmInsufficientTeff)
}

func TestInterpreter_ExecuteLine(t *testing.T) {
	in := NewInterpreter(domain.IMOAreas)

	ev, err := in.ExecuteLine("   -- just a comment")
	require.NoError(t, err)
	assert.Nil(t, ev)

	ev, err = in.ExecuteLine("")
	require.NoError(t, err)
	assert.Nil(t, ev)

	_, ok := in.Checkpoint()
	assert.False(t, ok)

	ev, err = in.ExecuteLine("2359")
	require.NoError(t, err)
	assert.Nil(t, ev)
	cp, ok := in.Checkpoint()
	require.True(t, ok)
	assert.Equal(t, "23:59", cp.String())

	ev, err = in.ExecuteLine("break_start -- coffee")
	require.NoError(t, err)
	assert.Equal(t, domain.BreakStart{}, ev)

	_, err = in.ExecuteLine("clouds(5)")
	assert.ErrorIs(t, err, domain.ErrInBreak)

	ev, err = in.ExecuteLine("break_end << 0010")
	require.NoError(t, err)
	assert.Equal(t, domain.BreakEnd{}, ev)
	cp, _ = in.Checkpoint()
	assert.Equal(t, "00:10", cp.String())
}

func TestInterpreter_InvalidTimes(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"checkpoint hour out of range", "2537"},
		{"checkpoint minute out of range", "1275"},
		{"inline checkpoint not numeric", "period_start << later"},
		{"inline checkpoint out of range", "period_start << 2460"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInterpreter(domain.IMOAreas)
			_, err := in.ExecuteLine(tt.line)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
