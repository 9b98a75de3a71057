// Package domain models visual meteor observations as reported to the
// International Meteor Organization (IMO).
//
// # Observation Log Conventions
//
// Time format:
//
//	Wall-clock HH:MM with no date. A session usually crosses midnight, so
//	arithmetic treats a time that is earlier than its reference as belonging
//	to the next day: 01:20 - 22:55 = 145 minutes. See [Timestamp.Sub].
//
// Periods and breaks:
//
//	A period is one continuous observing stretch bounded by start and end
//	events. Breaks suspend observation. A break must lie entirely inside or
//	entirely outside every interval it is measured against; a break that
//	straddles a boundary is rejected ([ErrInvalidBreaks]).
//
// Limiting magnitude (Lm):
//
//	The observer counts stars inside numbered IMO sky areas (1-30). Each
//	(count, area) pair maps to a magnitude through a fixed empirical table
//	([IMOAreas]). Several simultaneous counts are combined with the gap rule
//	from the IMO handbook (p. 55): a value isolated by more than 0.3 mag from
//	both neighbours is ignored. See [LimitingMagnitudeFromAreas].
//
// Cloud factor (F):
//
//	F = 1 / (1 - k), where k is the duration-weighted mean fraction of the
//	field obscured by clouds.
//
// Magnitudes:
//
//	Meteor magnitudes are stored multiplied by ten (3.5 mag -> 35) so half
//	magnitudes stay exact.
//
// # Processing Model
//
// [SessionBuilder] consumes [TimestampedEvent]s one at a time. Every period is
// validated and frozen into an immutable [Period] when the next period begins
// or when [SessionBuilder.Finish] is called. All computation is deterministic:
// the same event stream always produces identical periods.
package domain
