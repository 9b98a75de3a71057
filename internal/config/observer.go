package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Observer describes who made the observations and from where. It maps 1:1
// to the observer profile YAML file.
type Observer struct {
	Name    string `yaml:"name" json:"name"`
	IMOCode string `yaml:"imo_code" json:"imo_code,omitempty"`
	Site    string `yaml:"site" json:"site,omitempty"`

	// Latitude and Longitude are in degrees, east and north positive.
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`

	// Elevation is the site height above sea level in metres.
	Elevation float64 `yaml:"elevation" json:"elevation"`
}

// LoadObserver reads and validates the observer profile at path.
func LoadObserver(path string) (*Observer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("observer: read file: %w", err)
	}

	var obs Observer
	if err := yaml.Unmarshal(data, &obs); err != nil {
		return nil, fmt.Errorf("observer: parse yaml: %w", err)
	}

	if err := validateObserver(&obs); err != nil {
		return nil, fmt.Errorf("observer: %w", err)
	}
	return &obs, nil
}

func validateObserver(obs *Observer) error {
	if obs.Name == "" {
		return fmt.Errorf("name is required")
	}
	if obs.Latitude < -90 || obs.Latitude > 90 {
		return fmt.Errorf("latitude %v outside [-90, 90]", obs.Latitude)
	}
	if obs.Longitude < -180 || obs.Longitude > 180 {
		return fmt.Errorf("longitude %v outside [-180, 180]", obs.Longitude)
	}
	return nil
}
