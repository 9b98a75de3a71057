// Command meteoraid turns a visual meteor observation log into IMO count and
// magnitude distribution reports.
//
// Usage:
//
//	meteoraid session.log -c counts.csv -d distribution.csv -j session.json
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/meteoraid/internal/adapter/file"
	"github.com/couchcryptid/meteoraid/internal/config"
	"github.com/couchcryptid/meteoraid/internal/domain"
	"github.com/couchcryptid/meteoraid/internal/observability"
	"github.com/couchcryptid/meteoraid/internal/pipeline"
)

const version = "0.2.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "meteoraid: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	countPath string
	distrPath string
	jsonPath  string
	force     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "meteoraid INPUT",
		Short:         "Processes visual meteor observations",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.countPath, "output-count", "c", "", "path to store the CSV with the counts (stdout if omitted)")
	flags.StringVarP(&opts.distrPath, "output-distr", "d", "", "path to store the CSV with the magnitude distribution (stdout if omitted)")
	flags.StringVarP(&opts.jsonPath, "output-json", "j", "", "path to store a JSON export of the whole session")
	flags.BoolVarP(&opts.force, "force", "f", false, "overwrite output files if they already exist")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, input string, opts options, stdout, stderr io.Writer) error {
	logger := observability.NewLoggerTo(stderr, cfg)
	metrics := observability.NewMetrics()

	var observer *config.Observer
	if cfg.ObserverFile != "" {
		obs, err := config.LoadObserver(cfg.ObserverFile)
		if err != nil {
			return err
		}
		observer = obs
		logger.Debug("observer profile loaded", "observer", obs.Name, "site", obs.Site)
	}

	reader, err := file.Open(input)
	if err != nil {
		return err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Warn("close observation log", "error", err)
		}
	}()

	sinkOpts := file.Options{Force: opts.force, Stdout: stdout, Logger: logger}
	loaders := []pipeline.SessionLoader{
		file.NewSink("Count CSV", opts.countPath, file.CountRenderer(cfg.DateLayout), sinkOpts),
		file.NewSink("Distribution CSV", opts.distrPath, file.DistributionRenderer(), sinkOpts),
	}
	if opts.jsonPath != "" {
		loaders = append(loaders, file.NewSink("JSON export", opts.jsonPath, file.JSONRenderer(observer, cfg.DateLayout), sinkOpts))
	}

	p := pipeline.New(reader, pipeline.NewTransformer(domain.IMOAreas, logger), loaders, logger, metrics)
	_, runErr := p.Run(ctx, uuid.NewString())

	if cfg.MetricsTextfile != "" {
		if err := observability.WriteTextfile(cfg.MetricsTextfile, nil); err != nil {
			logger.Error("metrics export failed", "error", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("process %s: %w", input, runErr)
	}
	return nil
}

