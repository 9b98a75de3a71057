package domain

// Both factors are (1/teff)·Σ(value·minutes), summed in interval order and
// rounded half away from zero to two decimals. Keeping that evaluation order
// fixed keeps results stable in the last bit, which decides values like 5.545.
// Callers must pass intervals with a positive total duration.

// LimitingMagnitude returns the duration-weighted mean limiting magnitude,
// rounded to two decimals.
func LimitingMagnitude(intervals []Interval[float64]) float64 {
	return roundTo2(weightedMean(intervals, func(v float64) float64 { return v }))
}

// CloudFactor returns F = 1/(1-k), rounded to two decimals, where k is the
// duration-weighted mean cloud fraction. Interval values are percentages.
func CloudFactor(intervals []Interval[int]) float64 {
	k := weightedMean(intervals, func(pct int) float64 { return float64(pct) / 100 })
	return roundTo2(1 / (1 - k))
}

func weightedMean[T any](intervals []Interval[T], value func(T) float64) float64 {
	var (
		minutes int
		sum     float64
	)
	for _, iv := range intervals {
		minutes += iv.Minutes
		sum += value(iv.Value) * float64(iv.Minutes)
	}
	return (1 / float64(minutes)) * sum
}
