package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/couchcryptid/meteoraid/internal/config"
	"github.com/couchcryptid/meteoraid/internal/domain"
	"github.com/couchcryptid/meteoraid/internal/pipeline"
	"github.com/couchcryptid/meteoraid/internal/report"
)

var rule = strings.Repeat("-", 44)

// Renderer writes one report for a session.
type Renderer func(w io.Writer, run pipeline.RunInfo, s domain.Session) error

// CountRenderer renders the count CSV.
func CountRenderer(dateLayout string) Renderer {
	return func(w io.Writer, _ pipeline.RunInfo, s domain.Session) error {
		return report.WriteCountCSV(w, s, dateLayout)
	}
}

// DistributionRenderer renders the magnitude distribution CSV.
func DistributionRenderer() Renderer {
	return func(w io.Writer, _ pipeline.RunInfo, s domain.Session) error {
		return report.WriteDistributionCSV(w, s)
	}
}

// JSONRenderer renders the JSON export, stamped with the run's ID and start time.
func JSONRenderer(observer *config.Observer, dateLayout string) Renderer {
	return func(w io.Writer, run pipeline.RunInfo, s domain.Session) error {
		return report.WriteJSON(w, report.NewExport(run.ID, run.StartedAt, observer, s, dateLayout))
	}
}

// Options configures a Sink.
type Options struct {
	// Force overwrites an existing output file instead of falling back to stdout.
	Force bool
	// Stdout receives reports without a usable path. Defaults to os.Stdout.
	Stdout io.Writer
	Logger *slog.Logger
}

// Sink implements pipeline.SessionLoader. It writes one report to a file, or
// to stdout when no path is set or the file exists and Force is off.
type Sink struct {
	title   string
	path    string
	render  Renderer
	force   bool
	stdout  io.Writer
	banners bool
	logger  *slog.Logger
}

// NewSink creates a sink for the report called title.
func NewSink(title, path string, render Renderer, opts Options) *Sink {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{
		title:   title,
		path:    path,
		render:  render,
		force:   opts.Force,
		stdout:  stdout,
		banners: IsTerminal(stdout),
		logger:  logger,
	}
}

// Load renders the report and writes it out.
func (s *Sink) Load(_ context.Context, run pipeline.RunInfo, session domain.Session) error {
	var buf bytes.Buffer
	if err := s.render(&buf, run, session); err != nil {
		return fmt.Errorf("render %s: %w", s.title, err)
	}

	if s.path != "" {
		err := s.writeFile(buf.Bytes())
		if err == nil {
			s.logger.Info("report written", "report", s.title, "path", s.path)
			return nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("write %s: %w", s.title, err)
		}
		s.logger.Warn("output file exists and force is not set, writing to stdout",
			"report", s.title, "path", s.path)
	}
	return s.writeStdout(buf.Bytes())
}

func (s *Sink) writeFile(data []byte) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !s.force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(s.path, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (s *Sink) writeStdout(data []byte) error {
	if s.banners {
		if _, err := fmt.Fprintf(s.stdout, "%s:\n%s\n", s.title, rule); err != nil {
			return err
		}
	}
	if _, err := s.stdout.Write(data); err != nil {
		return err
	}
	if s.banners {
		if _, err := fmt.Fprintln(s.stdout, rule); err != nil {
			return err
		}
	}
	return nil
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
