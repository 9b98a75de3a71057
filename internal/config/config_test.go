package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.ObserverFile)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.Equal(t, "2 Jan 2006", cfg.DateLayout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("OBSERVER_FILE", "/etc/meteoraid/observer.yaml")
	t.Setenv("METRICS_TEXTFILE", "/var/lib/node_exporter/meteoraid.prom")
	t.Setenv("DATE_LAYOUT", "2006-01-02")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/etc/meteoraid/observer.yaml", cfg.ObserverFile)
	assert.Equal(t, "/var/lib/node_exporter/meteoraid.prom", cfg.MetricsTextfile)
	assert.Equal(t, "2006-01-02", cfg.DateLayout)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_InvalidMetricsTextfile(t *testing.T) {
	t.Setenv("METRICS_TEXTFILE", "/tmp/metrics.txt")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METRICS_TEXTFILE")
}

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "observer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadObserver(t *testing.T) {
	path := writeProfile(t, `
name: Jane Observer
imo_code: OBSJA
site: Vrani Kamen
latitude: 45.12
longitude: 15.5
elevation: 640
`)

	obs, err := LoadObserver(path)
	require.NoError(t, err)
	assert.Equal(t, &Observer{
		Name:      "Jane Observer",
		IMOCode:   "OBSJA",
		Site:      "Vrani Kamen",
		Latitude:  45.12,
		Longitude: 15.5,
		Elevation: 640,
	}, obs)
}

func TestLoadObserver_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", "latitude: 10\n", "name is required"},
		{"latitude out of range", "name: A\nlatitude: 91\n", "latitude"},
		{"longitude out of range", "name: A\nlongitude: -200\n", "longitude"},
		{"malformed yaml", "name: [unterminated\n", "parse yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadObserver(writeProfile(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadObserver(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read file")
	})
}
