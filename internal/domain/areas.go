package domain

import (
	"math"
	"slices"
)

// maxIsolationGap is the widest gap (in magnitudes) a sample may have to a
// neighbour and still be used, per the IMO gap rule.
const maxIsolationGap = 0.3

// AreaCount is the number of stars counted inside one numbered sky area.
type AreaCount struct {
	Stars int
	Area  int
}

// AreaTable resolves a star count in a sky area to a limiting magnitude.
// Out-of-range input is reported with ok == false.
type AreaTable interface {
	Lookup(area, stars int) (magnitude float64, ok bool)
}

// AreaTableData is an AreaTable backed by a static matrix indexed by
// (area-1, stars-1).
type AreaTableData [][]float64

// Lookup implements AreaTable.
func (d AreaTableData) Lookup(area, stars int) (float64, bool) {
	if area < 1 || area > len(d) {
		return 0, false
	}
	row := d[area-1]
	if stars < 1 || stars > len(row) {
		return 0, false
	}
	return row[stars-1], true
}

// LimitingMagnitudeFromAreas combines simultaneous area counts into one
// limiting magnitude, rounded to two decimals. It returns false when counts is
// empty or when any count cannot be resolved by the table.
func LimitingMagnitudeFromAreas(table AreaTable, counts []AreaCount) (float64, bool) {
	if len(counts) == 0 {
		return 0, false
	}

	lms := make([]float64, 0, len(counts))
	for _, c := range counts {
		lm, ok := table.Lookup(c.Area, c.Stars)
		if !ok {
			return 0, false
		}
		lms = append(lms, lm)
	}
	slices.Sort(lms)

	if len(lms) == 1 {
		return lms[0], true
	}

	// IMO handbook p. 55: "Whenever your limiting magnitude lies in a 'gap'
	// wider than 0.3 mag, you should ignore this field."
	selected := make([]float64, 0, len(lms))
	for i, lm := range lms {
		leftGap := i == 0 || lm-lms[i-1] > maxIsolationGap
		rightGap := i == len(lms)-1 || lms[i+1]-lm > maxIsolationGap
		if !leftGap || !rightGap {
			selected = append(selected, lm)
		}
	}

	if len(selected) == 0 {
		// every sample sits in a gap, fall back to the overall average
		return roundTo2(mean(lms)), true
	}
	return roundTo2(mean(selected)), true
}

// mean sums in slice order before dividing.
func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// roundTo2 rounds half away from zero to two decimal places.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
