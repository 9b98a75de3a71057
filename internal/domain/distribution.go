package domain

const (
	// MinMagnitudeBin and MaxMagnitudeBin bound the IMO magnitude distribution.
	MinMagnitudeBin = -6
	MaxMagnitudeBin = 7

	binCount = MaxMagnitudeBin - MinMagnitudeBin + 1
)

// Distribution is a magnitude histogram for one shower. Bins hold tenths of a
// meteor: a whole-magnitude meteor adds 10 to its bin, a half-magnitude meteor
// adds 5 to each of the two neighbouring bins.
type Distribution [binCount]int

// Add records a meteor magnitude (×10), clamping it into [-6, 7].
func (d *Distribution) Add(magnitude int) {
	mag := max(MinMagnitudeBin*10, min(MaxMagnitudeBin*10, magnitude))
	if mag%10 == 0 {
		d[mag/10-MinMagnitudeBin] += 10
		return
	}
	d[(mag-5)/10-MinMagnitudeBin] += 5
	d[(mag+5)/10-MinMagnitudeBin] += 5
}

// Tenths returns the bin value, in tenths of a meteor, for a whole magnitude.
func (d *Distribution) Tenths(magnitude int) int {
	if magnitude < MinMagnitudeBin || magnitude > MaxMagnitudeBin {
		return 0
	}
	return d[magnitude-MinMagnitudeBin]
}

// Count returns the bin value, in meteors, for a whole magnitude.
func (d *Distribution) Count(magnitude int) float64 {
	return float64(d.Tenths(magnitude)) / 10
}
