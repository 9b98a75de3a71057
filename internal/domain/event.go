package domain

// Field is the centre of the observed field in equatorial coordinates, degrees.
type Field struct {
	RA  float64 `json:"ra"`
	Dec float64 `json:"dec"`
}

// Meteor is a single observed meteor. Magnitude is stored multiplied by ten.
type Meteor struct {
	Shower    Shower `json:"shower"`
	Magnitude int    `json:"magnitude"`
}

// Event is one of the observation events understood by SessionBuilder. The set
// is closed: only the types in this file implement it.
type Event interface {
	isEvent()
}

type (
	// NewPeriod closes the current period and opens a fresh one.
	NewPeriod struct{}
	// PeriodStart marks the start of the current period.
	PeriodStart struct{}
	// PeriodEnd marks the end of the current period.
	PeriodEnd struct{}
	// PeriodDate sets the free-text date of the current period.
	PeriodDate struct{ Date string }
	// FieldEvent sets the observed field.
	FieldEvent struct{ Field Field }
	// Showers declares the showers being observed.
	Showers struct{ Showers []Shower }
	// AreasCounted records simultaneous star counts for a limiting magnitude sample.
	AreasCounted struct{ Counts []AreaCount }
	// Clouds records the percentage (0-99) of the field obscured by clouds.
	Clouds struct{ Percent int }
	// BreakStart suspends observation.
	BreakStart struct{}
	// BreakEnd resumes observation.
	BreakEnd struct{}
	// MeteorEvent records an observed meteor.
	MeteorEvent struct{ Meteor Meteor }
)

func (NewPeriod) isEvent()    {}
func (PeriodStart) isEvent()  {}
func (PeriodEnd) isEvent()    {}
func (PeriodDate) isEvent()   {}
func (FieldEvent) isEvent()   {}
func (Showers) isEvent()      {}
func (AreasCounted) isEvent() {}
func (Clouds) isEvent()       {}
func (BreakStart) isEvent()   {}
func (BreakEnd) isEvent()     {}
func (MeteorEvent) isEvent()  {}

// TimestampedEvent pairs an event with the time it was registered.
type TimestampedEvent struct {
	Time  Timestamp
	Event Event
}
