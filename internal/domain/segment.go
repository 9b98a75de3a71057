package domain

// Checkpoint is a measurement taken at a point in time. It stays valid until
// the next checkpoint or the end of the period.
type Checkpoint[T any] struct {
	Value T
	Time  Timestamp
}

// Interval is a measurement weighted by the effective minutes it covers.
type Interval[T any] struct {
	Value   T
	Minutes int
}

// Segment turns ordered checkpoints into duration-weighted intervals. Each
// checkpoint lasts until the next one; the last lasts until end. Break time is
// excluded and a break straddling any interval fails with ErrInvalidBreaks.
func Segment[T any](checkpoints []Checkpoint[T], end Timestamp, breaks []Break) ([]Interval[T], error) {
	intervals := make([]Interval[T], 0, len(checkpoints))
	for i, cp := range checkpoints {
		until := end
		if i+1 < len(checkpoints) {
			until = checkpoints[i+1].Time
		}
		minutes, err := EffectiveMinutes(cp.Time, until, breaks)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, Interval[T]{Value: cp.Value, Minutes: minutes})
	}
	return intervals, nil
}

// TotalMinutes sums the minutes covered by intervals.
func TotalMinutes[T any](intervals []Interval[T]) int {
	total := 0
	for _, iv := range intervals {
		total += iv.Minutes
	}
	return total
}
