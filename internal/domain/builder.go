package domain

import "slices"

// SessionBuilder accumulates observation events into periods. It is not safe
// for concurrent use.
type SessionBuilder struct {
	areas   AreaTable
	periods []Period
	current incompletePeriod
}

// NewSessionBuilder creates a builder that resolves area counts through table.
func NewSessionBuilder(table AreaTable) *SessionBuilder {
	return &SessionBuilder{areas: table}
}

// Periods returns the number of periods finalized so far.
func (b *SessionBuilder) Periods() int {
	return len(b.periods)
}

// InBreak reports whether a break is currently open.
func (b *SessionBuilder) InBreak() bool {
	return b.current.openBreak != nil
}

// Finish finalizes the period in progress and returns the whole session.
func (b *SessionBuilder) Finish() (Session, error) {
	last, err := b.current.finalize()
	if err != nil {
		return Session{}, err
	}
	periods := append(slices.Clone(b.periods), last)
	return Session{periods: periods}, nil
}

// Register applies one event to the period in progress.
func (b *SessionBuilder) Register(te TimestampedEvent) error {
	if b.current.openBreak != nil {
		if _, ok := te.Event.(BreakEnd); !ok {
			return ErrInBreak
		}
	}

	cur := &b.current
	switch ev := te.Event.(type) {
	case NewPeriod:
		done := b.current
		b.current = incompletePeriod{}
		p, err := done.finalize()
		if err != nil {
			return err
		}
		b.periods = append(b.periods, p)
	case PeriodStart:
		// Start and end may be re-registered; the latest wins.
		cur.start = &te.Time
	case PeriodEnd:
		cur.end = &te.Time
	case PeriodDate:
		if cur.date != nil {
			return ErrAlreadyDate
		}
		cur.date = &ev.Date
	case Showers:
		if cur.showers != nil {
			return ErrAlreadyShowers
		}
		cur.showers = dedupeShowers(ev.Showers)
	case FieldEvent:
		if cur.field != nil {
			return ErrAlreadyField
		}
		cur.field = &ev.Field
	case MeteorEvent:
		if !slices.Contains(cur.showers, ev.Meteor.Shower) {
			return ErrNotObservingShower
		}
		cur.meteors = append(cur.meteors, ev.Meteor)
	case AreasCounted:
		lm, ok := LimitingMagnitudeFromAreas(b.areas, ev.Counts)
		if !ok {
			return ErrInvalidLm
		}
		cur.lms = append(cur.lms, Checkpoint[float64]{Value: lm, Time: te.Time})
	case Clouds:
		cur.clouds = append(cur.clouds, Checkpoint[int]{Value: ev.Percent, Time: te.Time})
	case BreakStart:
		cur.openBreak = &te.Time
	case BreakEnd:
		if cur.openBreak == nil {
			return ErrNoBreakToEnd
		}
		cur.breaks = append(cur.breaks, Break{Start: *cur.openBreak, End: te.Time})
		cur.openBreak = nil
	default:
		return ErrUnknown
	}
	return nil
}

// incompletePeriod is the mutable accumulator for the period in progress.
type incompletePeriod struct {
	start     *Timestamp
	end       *Timestamp
	date      *string
	field     *Field
	showers   []Shower // nil until declared
	meteors   []Meteor
	lms       []Checkpoint[float64]
	clouds    []Checkpoint[int]
	breaks    []Break
	openBreak *Timestamp
}

func (ip incompletePeriod) finalize() (Period, error) {
	switch {
	case len(ip.clouds) == 0:
		return Period{}, ErrNoF
	case len(ip.lms) == 0:
		return Period{}, ErrNoLm
	case ip.openBreak != nil:
		return Period{}, ErrUnfinishedBreak
	case ip.start == nil:
		return Period{}, ErrNoStartTime
	case ip.end == nil:
		return Period{}, ErrNoEndTime
	case ip.field == nil:
		return Period{}, ErrNoField
	case ip.date == nil:
		return Period{}, ErrNoDate
	}

	start, end := *ip.start, *ip.end

	teffMinutes, err := EffectiveMinutes(start, end, ip.breaks)
	if err != nil {
		return Period{}, ErrInvalidBreaks
	}
	lms, err := Segment(ip.lms, end, ip.breaks)
	if err != nil {
		return Period{}, ErrInvalidBreaks
	}
	clouds, err := Segment(ip.clouds, end, ip.breaks)
	if err != nil {
		return Period{}, ErrInvalidBreaks
	}

	if teffMinutes == 0 {
		return Period{}, ErrNoTeff
	}

	if TotalMinutes(lms) != teffMinutes {
		return Period{}, ErrLmInsufficientTeff
	}
	lm := LimitingMagnitude(lms)

	if TotalMinutes(clouds) != teffMinutes {
		return Period{}, ErrFInsufficientTeff
	}
	f := CloudFactor(clouds)

	return Period{
		startTime:         start,
		endTime:           end,
		date:              *ip.date,
		teff:              float64(teffMinutes) / 60,
		limitingMagnitude: lm,
		field:             *ip.field,
		cloudFactor:       f,
		showers:           slices.Clone(ip.showers),
		meteors:           slices.Clone(ip.meteors),
	}, nil
}

func dedupeShowers(in []Shower) []Shower {
	out := make([]Shower, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
