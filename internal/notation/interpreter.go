package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/couchcryptid/meteoraid/internal/domain"
)

const (
	commentMarker   = "--"
	checkpointDelim = "<<"
)

// Interpreter executes observation log lines against a session builder,
// tracking the current time checkpoint.
type Interpreter struct {
	builder    *domain.SessionBuilder
	checkpoint *domain.Timestamp
}

// NewInterpreter creates an interpreter whose area counts resolve through table.
func NewInterpreter(table domain.AreaTable) *Interpreter {
	return &Interpreter{builder: domain.NewSessionBuilder(table)}
}

// ExecuteLine interprets one log line. It returns the event that was
// registered, or nil for blank, comment and checkpoint-only lines.
func (in *Interpreter) ExecuteLine(line string) (domain.Event, error) {
	code, _, _ := strings.Cut(line, commentMarker)
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	stmt, at, hasAt := strings.Cut(code, checkpointDelim)
	stmt = strings.TrimSpace(stmt)

	var explicit *domain.Timestamp
	if hasAt {
		ts, err := parseShorthand(at)
		if err != nil {
			return nil, err
		}
		explicit = &ts
	}

	if isShorthand(stmt) {
		ts, err := parseShorthand(stmt)
		if err != nil {
			return nil, err
		}
		in.checkpoint = &ts
		return nil, nil
	}

	if explicit != nil {
		in.checkpoint = explicit
	}
	if in.checkpoint == nil {
		return nil, ErrNoTimeCheckpoint
	}

	ev, err := ParseStatement(stmt)
	if err != nil {
		return nil, err
	}
	if err := in.builder.Register(domain.TimestampedEvent{Time: *in.checkpoint, Event: ev}); err != nil {
		return nil, err
	}
	return ev, nil
}

// ExecuteLines interprets a newline-separated block, stopping at the first
// failing line.
func (in *Interpreter) ExecuteLines(text string) error {
	for i, line := range strings.Split(text, "\n") {
		if _, err := in.ExecuteLine(line); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}

// Checkpoint returns the current time checkpoint, if one has been set.
func (in *Interpreter) Checkpoint() (domain.Timestamp, bool) {
	if in.checkpoint == nil {
		return domain.Timestamp{}, false
	}
	return *in.checkpoint, true
}

// Periods returns the number of periods finalized so far.
func (in *Interpreter) Periods() int {
	return in.builder.Periods()
}

// Session finalizes the last period and returns the complete session.
func (in *Interpreter) Session() (domain.Session, error) {
	return in.builder.Finish()
}

func isShorthand(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseShorthand(s string) (domain.Timestamp, error) {
	s = strings.TrimSpace(s)
	if !isShorthand(s) {
		return domain.Timestamp{}, fmt.Errorf("%w: time %q is not HHMM", ErrInvalidArgument, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return domain.Timestamp{}, fmt.Errorf("%w: time %q: %v", ErrInvalidArgument, s, err)
	}
	ts, err := domain.TimestampFromShorthand(n)
	if err != nil {
		return domain.Timestamp{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return ts, nil
}
