package config

import (
	"errors"
	"fmt"
	"strings"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	LogLevel  string
	LogFormat string

	// ObserverFile is an optional YAML observer profile whose details are
	// copied into the JSON export.
	ObserverFile string

	// MetricsTextfile, when set, receives the run's metrics in node-exporter
	// textfile format once the run completes.
	MetricsTextfile string

	// DateLayout is the Go time layout used to read period dates for the
	// solar longitude column.
	DateLayout string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:        strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "text")),
		ObserverFile:    sharedcfg.EnvOrDefault("OBSERVER_FILE", ""),
		MetricsTextfile: sharedcfg.EnvOrDefault("METRICS_TEXTFILE", ""),
		DateLayout:      sharedcfg.EnvOrDefault("DATE_LAYOUT", "2 Jan 2006"),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	if strings.TrimSpace(cfg.DateLayout) == "" {
		return nil, errors.New("DATE_LAYOUT must not be empty")
	}
	if cfg.MetricsTextfile != "" && !strings.HasSuffix(cfg.MetricsTextfile, ".prom") {
		return nil, errors.New("METRICS_TEXTFILE must end in .prom")
	}

	return cfg, nil
}
