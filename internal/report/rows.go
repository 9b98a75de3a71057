// Package report renders a finished observing session in the formats IMO
// accepts: a count (rate) table, a magnitude distribution table, and a JSON
// export of the whole session.
package report

import (
	"github.com/couchcryptid/meteoraid/internal/astro"
	"github.com/couchcryptid/meteoraid/internal/domain"
)

// CountRow is one line of the count table: a declared shower within a period.
type CountRow struct {
	Shower            domain.Shower
	Date              string
	Start             domain.Timestamp
	End               domain.Timestamp
	SolarLongitude    float64
	HasSolarLongitude bool
	Teff              float64
	Field             domain.Field
	CloudFactor       float64
	LimitingMagnitude float64
	Number            int
}

// DistributionRow is one line of the magnitude distribution table.
type DistributionRow struct {
	Shower       domain.Shower
	Date         string
	Start        domain.Timestamp
	End          domain.Timestamp
	Distribution domain.Distribution
}

// CountRows flattens a session into count rows, periods in order and showers
// in declaration order. dateLayout is used to read period dates for the solar
// longitude.
func CountRows(s domain.Session, dateLayout string) []CountRow {
	var rows []CountRow
	for _, p := range s.Periods() {
		sol, ok := astro.SolarLongitude(p.Date(), dateLayout, p.StartTime(), p.EndTime())
		for _, tally := range p.Tallies() {
			rows = append(rows, CountRow{
				Shower:            tally.Shower,
				Date:              p.Date(),
				Start:             p.StartTime(),
				End:               p.EndTime(),
				SolarLongitude:    sol,
				HasSolarLongitude: ok,
				Teff:              p.Teff(),
				Field:             p.Field(),
				CloudFactor:       p.CloudFactor(),
				LimitingMagnitude: p.LimitingMagnitude(),
				Number:            tally.Count,
			})
		}
	}
	return rows
}

// DistributionRows flattens a session into magnitude distribution rows.
func DistributionRows(s domain.Session) []DistributionRow {
	var rows []DistributionRow
	for _, p := range s.Periods() {
		for _, tally := range p.Tallies() {
			rows = append(rows, DistributionRow{
				Shower:       tally.Shower,
				Date:         p.Date(),
				Start:        p.StartTime(),
				End:          p.EndTime(),
				Distribution: tally.Distribution,
			})
		}
	}
	return rows
}
