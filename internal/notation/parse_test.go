package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/meteoraid/internal/domain"
)

func TestParseStatement(t *testing.T) {
	tests := []struct {
		name     string
		stmt     string
		expected domain.Event
	}{
		{"period start", "period_start", domain.PeriodStart{}},
		{"period end", "period_end", domain.PeriodEnd{}},
		{"new period", "new_period", domain.NewPeriod{}},
		{"break start", "break_start", domain.BreakStart{}},
		{"break end", "break_end", domain.BreakEnd{}},
		{"date", `date("12 Aug 2019")`, domain.PeriodDate{Date: "12 Aug 2019"}},
		{"date single quoted", `date('13 Aug 2019')`, domain.PeriodDate{Date: "13 Aug 2019"}},
		{"clouds", "clouds(15)", domain.Clouds{Percent: 15}},
		{"clouds with spaces", "clouds( 0 )", domain.Clouds{Percent: 0}},
		{
			"showers",
			"showers(PER, ANT, KCG, SPO)",
			domain.Showers{Showers: []domain.Shower{domain.Perseids, domain.Antihelion, domain.KappaCygnids, domain.Sporadic}},
		},
		{
			"areas",
			"areas(area14(10), area7(10), area6(8))",
			domain.AreasCounted{Counts: []domain.AreaCount{{Stars: 10, Area: 14}, {Stars: 10, Area: 7}, {Stars: 8, Area: 6}}},
		},
		{"field", "fieldC(336, 52.3)", domain.FieldEvent{Field: domain.Field{RA: 336, Dec: 52.3}}},
		{"negative field", "fieldC(12.5, -8)", domain.FieldEvent{Field: domain.Field{RA: 12.5, Dec: -8}}},
		{"field at the pole", "fieldC(0, 90)", domain.FieldEvent{Field: domain.Field{RA: 0, Dec: 90}}},
		{"meteor", "per(3.5)", domain.MeteorEvent{Meteor: domain.Meteor{Shower: domain.Perseids, Magnitude: 35}}},
		{"bright meteor", "spo(-2)", domain.MeteorEvent{Meteor: domain.Meteor{Shower: domain.Sporadic, Magnitude: -20}}},
		{"fireball half magnitude", "gem(-1.5)", domain.MeteorEvent{Meteor: domain.Meteor{Shower: domain.Geminids, Magnitude: -15}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := ParseStatement(tt.stmt)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ev)
		})
	}
}

func TestParseStatement_Errors(t *testing.T) {
	tests := []struct {
		name string
		stmt string
		want error
	}{
		{"unknown bare word", "period_middle", ErrUnknownStatement},
		{"unknown function", "moon(50)", ErrUnknownStatement},
		{"garbage", "!!", ErrUnknownStatement},
		{"uppercase meteor", "PER(3.5)", ErrUnknownStatement},
		{"bare shower code", "per", ErrUnknownStatement},
		{"unquoted date", "date(12 Aug 2019)", ErrInvalidArgument},
		{"empty date", `date("")`, ErrInvalidArgument},
		{"clouds over 99", "clouds(100)", ErrInvalidArgument},
		{"negative clouds", "clouds(-1)", ErrInvalidArgument},
		{"fractional clouds", "clouds(2.5)", ErrInvalidArgument},
		{"unknown shower", "showers(PER, XYZ)", ErrInvalidArgument},
		{"no showers", "showers()", ErrInvalidArgument},
		{"area out of range", "areas(area31(5))", ErrInvalidArgument},
		{"area zero", "areas(area0(5))", ErrInvalidArgument},
		{"malformed area", "areas(14, 11)", ErrInvalidArgument},
		{"empty area argument", "areas(area14(11),)", ErrInvalidArgument},
		{"field needs two values", "fieldC(336)", ErrInvalidArgument},
		{"field not numeric", "fieldC(a, b)", ErrInvalidArgument},
		{"quarter magnitude", "per(3.25)", ErrInvalidArgument},
		{"odd tenth", "per(2.3)", ErrInvalidArgument},
		{"missing magnitude", "per()", ErrInvalidArgument},
		{"magnitude not a number", "per(NaN)", ErrInvalidArgument},
		{"infinite magnitude", "per(+Inf)", ErrInvalidArgument},
		{"right ascension not a number", "fieldC(NaN, 52)", ErrInvalidArgument},
		{"infinite field", "fieldC(Inf, -Inf)", ErrInvalidArgument},
		{"right ascension too large", "fieldC(361, 52)", ErrInvalidArgument},
		{"negative right ascension", "fieldC(-1, 52)", ErrInvalidArgument},
		{"declination below pole", "fieldC(336, -90.5)", ErrInvalidArgument},
		{"declination above pole", "fieldC(336, 91)", ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatement(tt.stmt)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSplitArgs(t *testing.T) {
	parts, err := splitArgs("area14(11), area7( 10 )")
	require.NoError(t, err)
	assert.Equal(t, []string{"area14(11)", "area7( 10 )"}, parts)

	parts, err = splitArgs("  ")
	require.NoError(t, err)
	assert.Empty(t, parts)

	_, err = splitArgs("area14(11")
	assert.Error(t, err)

	_, err = splitArgs("a),(b")
	assert.Error(t, err)
}
