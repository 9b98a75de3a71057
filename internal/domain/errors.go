package domain

// BuilderError is the closed set of reasons a period or session is rejected.
// Values are comparable, so callers match them with errors.Is.
type BuilderError int

const (
	ErrUnknown BuilderError = iota
	ErrNoStartTime
	ErrNoEndTime
	ErrNoLm
	ErrNoField
	ErrNoF
	ErrNoDate
	ErrAlreadyDate
	ErrAlreadyField
	ErrAlreadyShowers
	ErrInvalidLm
	ErrInBreak
	ErrNoBreakToEnd
	ErrUnfinishedBreak
	ErrInvalidBreaks
	ErrLmInsufficientTeff
	ErrFInsufficientTeff
	ErrNotObservingShower
	ErrNoTeff
)

func (e BuilderError) Error() string {
	switch e {
	case ErrNoStartTime:
		return "no start time given for this period"
	case ErrNoEndTime:
		return "no end time given for this period"
	case ErrNoLm:
		return "no areas for the calculation of limiting magnitude are counted"
	case ErrNoField:
		return "no field given for this period"
	case ErrNoF:
		return "no cloud information given for this period"
	case ErrNoDate:
		return "no date specified for this period"
	case ErrAlreadyDate:
		return "a date was already specified for this period"
	case ErrAlreadyField:
		return "a field was already specified for this period"
	case ErrAlreadyShowers:
		return "showers were already specified for this period"
	case ErrInvalidLm:
		return "invalid data for calculating limiting magnitude"
	case ErrInBreak:
		return "events cannot be registered during a break"
	case ErrNoBreakToEnd:
		return "there is no ongoing break to end"
	case ErrUnfinishedBreak:
		return "a break was started but never ended"
	case ErrInvalidBreaks:
		return "breaks must lie entirely inside or outside each interval"
	case ErrLmInsufficientTeff:
		return "recorded limiting magnitudes do not span the whole period"
	case ErrFInsufficientTeff:
		return "recorded cloud estimates do not span the whole period"
	case ErrNotObservingShower:
		return "meteor belongs to a shower that is not being observed"
	case ErrNoTeff:
		return "the period has no effective observing time"
	default:
		return "unexpected error"
	}
}

// Reason returns a short machine-friendly label, used as a metric label.
func (e BuilderError) Reason() string {
	switch e {
	case ErrNoStartTime:
		return "no_start_time"
	case ErrNoEndTime:
		return "no_end_time"
	case ErrNoLm:
		return "no_lm"
	case ErrNoField:
		return "no_field"
	case ErrNoF:
		return "no_f"
	case ErrNoDate:
		return "no_date"
	case ErrAlreadyDate:
		return "already_date"
	case ErrAlreadyField:
		return "already_field"
	case ErrAlreadyShowers:
		return "already_showers"
	case ErrInvalidLm:
		return "invalid_lm"
	case ErrInBreak:
		return "in_break"
	case ErrNoBreakToEnd:
		return "no_break_to_end"
	case ErrUnfinishedBreak:
		return "unfinished_break"
	case ErrInvalidBreaks:
		return "invalid_breaks"
	case ErrLmInsufficientTeff:
		return "lm_insufficient_teff"
	case ErrFInsufficientTeff:
		return "f_insufficient_teff"
	case ErrNotObservingShower:
		return "not_observing_shower"
	case ErrNoTeff:
		return "no_teff"
	default:
		return "unknown"
	}
}
