package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/meteoraid/internal/domain"
	"github.com/couchcryptid/meteoraid/internal/observability"
)

// Line is one line of an observation log. Number is 1-based.
type Line struct {
	Number int
	Text   string
}

// LineExtractor yields log lines in order. It returns io.EOF after the last line.
type LineExtractor interface {
	Extract(ctx context.Context) (Line, error)
}

// Transformer turns log lines into registered events and, once the input is
// exhausted, into a finished session.
type Transformer interface {
	Transform(ctx context.Context, line Line) (domain.Event, error)
	Finish(ctx context.Context) (domain.Session, error)
}

// SessionLoader writes a finished session to its destination.
type SessionLoader interface {
	Load(ctx context.Context, run RunInfo, session domain.Session) error
}

// RunInfo identifies one pipeline run.
type RunInfo struct {
	ID        string
	StartedAt time.Time
}

// Result summarises a successful run.
type Result struct {
	Session  domain.Session
	Lines    int
	Events   int
	Duration time.Duration
}

// LineError reports the log line at which a run was aborted. Line is 0 when
// the failure happened after the last line, while finalizing the session.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("end of input: %v", e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Pipeline orchestrates the extract-transform-load run over one observation log.
type Pipeline struct {
	extractor   LineExtractor
	transformer Transformer
	loaders     []SessionLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	clock       clockwork.Clock
}

// New creates a Pipeline with the given stages and observability.
func New(e LineExtractor, t Transformer, loaders []SessionLoader, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loaders:     loaders,
		logger:      logger,
		metrics:     metrics,
		clock:       clockwork.NewRealClock(),
	}
}

// SetClock swaps the time source used to stamp and time runs. Pass nil to
// reset to real time.
func (p *Pipeline) SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	p.clock = c
}

// Run reads every line, builds the session and hands it to each loader. The
// first error aborts the run; nothing is loaded unless the whole log is valid.
func (p *Pipeline) Run(ctx context.Context, runID string) (Result, error) {
	run := RunInfo{ID: runID, StartedAt: p.clock.Now()}
	p.logger.Info("run started", "run_id", run.ID)

	res, err := p.run(ctx, run)
	res.Duration = p.clock.Since(run.StartedAt)
	p.metrics.RunDuration.Observe(res.Duration.Seconds())

	if err != nil {
		p.metrics.BuildFailures.WithLabelValues(failureReason(err)).Inc()
		p.metrics.LastRunSuccess.Set(0)
		p.logger.Error("run failed", "run_id", run.ID, "error", err, "lines", res.Lines)
		return res, err
	}

	p.metrics.LastRunSuccess.Set(1)
	p.logger.Info("run complete",
		"run_id", run.ID,
		"lines", res.Lines,
		"events", res.Events,
		"periods", res.Session.Len(),
		"duration", res.Duration,
	)
	return res, nil
}

func (p *Pipeline) run(ctx context.Context, run RunInfo) (Result, error) {
	var res Result
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		line, err := p.extractor.Extract(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("extract line %d: %w", res.Lines+1, err)
		}
		res.Lines++
		p.metrics.LinesRead.Inc()

		ev, err := p.transformer.Transform(ctx, line)
		if err != nil {
			return res, &LineError{Line: line.Number, Err: err}
		}
		if ev != nil {
			res.Events++
			p.metrics.EventsRegistered.WithLabelValues(EventKind(ev)).Inc()
		}
	}

	session, err := p.transformer.Finish(ctx)
	if err != nil {
		return res, &LineError{Err: err}
	}
	res.Session = session
	p.recordSession(session)

	for _, l := range p.loaders {
		if err := l.Load(ctx, run, session); err != nil {
			return res, fmt.Errorf("load session: %w", err)
		}
	}
	return res, nil
}

func (p *Pipeline) recordSession(s domain.Session) {
	p.metrics.PeriodsFinalized.Add(float64(s.Len()))
	for _, period := range s.Periods() {
		for _, m := range period.Meteors() {
			p.metrics.MeteorsRecorded.WithLabelValues(m.Shower.Code()).Inc()
		}
	}
}
