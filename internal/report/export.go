package report

import (
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"gonum.org/v1/gonum/stat"

	"github.com/couchcryptid/meteoraid/internal/astro"
	"github.com/couchcryptid/meteoraid/internal/config"
	"github.com/couchcryptid/meteoraid/internal/domain"
)

// Export is the JSON document describing one processed session.
type Export struct {
	RunID       string           `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Observer    *config.Observer `json:"observer,omitempty"`
	Periods     []PeriodRecord   `json:"periods"`
}

// PeriodRecord is the exported form of a domain.Period.
type PeriodRecord struct {
	ID                string          `json:"id"`
	Date              string          `json:"date"`
	Start             string          `json:"start"`
	End               string          `json:"end"`
	SolarLongitude    *float64        `json:"solar_longitude"`
	Teff              float64         `json:"teff"`
	LimitingMagnitude float64         `json:"lm"`
	CloudFactor       float64         `json:"f"`
	Field             domain.Field    `json:"field"`
	Showers           []ShowerRecord  `json:"showers"`
	Meteors           []domain.Meteor `json:"meteors"`
}

// ShowerRecord is the count and magnitude distribution of one shower in a period.
// MeanMagnitude is nil when the shower has no meteors.
type ShowerRecord struct {
	Shower        domain.Shower      `json:"shower"`
	Count         int                `json:"count"`
	MeanMagnitude *float64           `json:"mean_magnitude"`
	Distribution  map[string]float64 `json:"distribution"`
}

// NewExport builds the export document for s.
func NewExport(runID string, generatedAt time.Time, observer *config.Observer, s domain.Session, dateLayout string) Export {
	periods := s.Periods()
	exp := Export{
		RunID:       runID,
		GeneratedAt: generatedAt.UTC(),
		Observer:    observer,
		Periods:     make([]PeriodRecord, 0, len(periods)),
	}
	for _, p := range periods {
		rec := PeriodRecord{
			ID:                p.ID(),
			Date:              p.Date(),
			Start:             p.StartTime().String(),
			End:               p.EndTime().String(),
			Teff:              p.Teff(),
			LimitingMagnitude: p.LimitingMagnitude(),
			CloudFactor:       p.CloudFactor(),
			Field:             p.Field(),
			Meteors:           p.Meteors(),
		}
		if sol, ok := astro.SolarLongitude(p.Date(), dateLayout, p.StartTime(), p.EndTime()); ok {
			rec.SolarLongitude = &sol
		}
		for _, tally := range p.Tallies() {
			rec.Showers = append(rec.Showers, ShowerRecord{
				Shower:        tally.Shower,
				Count:         tally.Count,
				MeanMagnitude: meanMagnitude(rec.Meteors, tally.Shower),
				Distribution:  distributionMap(tally.Distribution),
			})
		}
		exp.Periods = append(exp.Periods, rec)
	}
	return exp
}

// WriteJSON encodes e to w, indented.
func WriteJSON(w io.Writer, e Export) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

func meanMagnitude(meteors []domain.Meteor, shower domain.Shower) *float64 {
	var mags []float64
	for _, m := range meteors {
		if m.Shower == shower {
			mags = append(mags, float64(m.Magnitude)/10)
		}
	}
	if len(mags) == 0 {
		return nil
	}
	mean := stat.Mean(mags, nil)
	return &mean
}

// distributionMap keys non-empty bins by magnitude.
func distributionMap(d domain.Distribution) map[string]float64 {
	out := make(map[string]float64)
	for m := domain.MinMagnitudeBin; m <= domain.MaxMagnitudeBin; m++ {
		if v := d.Count(m); v != 0 {
			out[fmt.Sprint(m)] = v
		}
	}
	return out
}
