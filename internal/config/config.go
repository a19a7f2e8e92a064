package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the three job settings read from the YAML config file.
type Config struct {
	Seed    int64
	Window  int
	Version string
}

// rawConfig uses pointers so a missing key is distinguishable from a
// zero value.
type rawConfig struct {
	Seed    *int64  `yaml:"seed"`
	Window  *int    `yaml:"window"`
	Version *string `yaml:"version"`
}

// Load reads and validates the job configuration. All required keys
// must be present and well-typed; there are no defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if raw.Seed == nil {
		return nil, fmt.Errorf("missing required config field: seed")
	}
	if raw.Window == nil {
		return nil, fmt.Errorf("missing required config field: window")
	}
	if raw.Version == nil {
		return nil, fmt.Errorf("missing required config field: version")
	}
	if *raw.Window < 1 {
		return nil, fmt.Errorf("window must be positive, got %d", *raw.Window)
	}

	return &Config{
		Seed:    *raw.Seed,
		Window:  *raw.Window,
		Version: *raw.Version,
	}, nil
}
