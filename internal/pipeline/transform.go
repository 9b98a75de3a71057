package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/couchcryptid/meteoraid/internal/domain"
	"github.com/couchcryptid/meteoraid/internal/notation"
)

// NotationTransformer implements Transformer by interpreting lines written in
// the observation notation.
type NotationTransformer struct {
	interpreter *notation.Interpreter
	logger      *slog.Logger
}

// NewTransformer creates a NotationTransformer that resolves area counts
// through table.
func NewTransformer(table domain.AreaTable, logger *slog.Logger) *NotationTransformer {
	return &NotationTransformer{
		interpreter: notation.NewInterpreter(table),
		logger:      logger,
	}
}

func (t *NotationTransformer) Transform(_ context.Context, line Line) (domain.Event, error) {
	ev, err := t.interpreter.ExecuteLine(line.Text)
	if err != nil {
		return nil, err
	}
	if ev != nil {
		cp, _ := t.interpreter.Checkpoint()
		t.logger.Debug("event registered", "line", line.Number, "time", cp.String(), "event", EventKind(ev))
		if _, ok := ev.(domain.NewPeriod); ok {
			t.logger.Info("period finalized", "line", line.Number, "periods", t.interpreter.Periods())
		}
	}
	return ev, nil
}

func (t *NotationTransformer) Finish(_ context.Context) (domain.Session, error) {
	return t.interpreter.Session()
}

// EventKind returns a short label for an event, used in logs and metric labels.
func EventKind(ev domain.Event) string {
	switch ev.(type) {
	case domain.NewPeriod:
		return "new_period"
	case domain.PeriodStart:
		return "period_start"
	case domain.PeriodEnd:
		return "period_end"
	case domain.PeriodDate:
		return "date"
	case domain.FieldEvent:
		return "field"
	case domain.Showers:
		return "showers"
	case domain.AreasCounted:
		return "areas"
	case domain.Clouds:
		return "clouds"
	case domain.BreakStart:
		return "break_start"
	case domain.BreakEnd:
		return "break_end"
	case domain.MeteorEvent:
		return "meteor"
	default:
		return "unknown"
	}
}

// failureReason classifies a run error for the build failures metric.
func failureReason(err error) string {
	var be domain.BuilderError
	switch {
	case errors.As(err, &be):
		return be.Reason()
	case errors.Is(err, notation.ErrNoTimeCheckpoint):
		return "no_time_checkpoint"
	case errors.Is(err, notation.ErrUnknownStatement):
		return "unknown_statement"
	case errors.Is(err, notation.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "io"
	}
}
