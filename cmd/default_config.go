package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/razbearr/slotted-aloha-simulator/sim"
)

// CurveDefaults configures theoretical curve sampling.
type CurveDefaults struct {
	MaxLoad float64 `yaml:"max_load"`
	Samples int     `yaml:"samples"`
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version  string                              `yaml:"version"`
	MaxSlots int                                 `yaml:"max_slots"`
	Curve    CurveDefaults                       `yaml:"curve"`
	Presets  map[string]sim.SimulationParameters `yaml:"presets"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing defaults YAML: %w", err)
	}
	for name, preset := range cfg.Presets {
		if err := preset.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	if cfg.MaxSlots < 0 {
		return nil, fmt.Errorf("max_slots must be non-negative, got %d", cfg.MaxSlots)
	}
	return &cfg, nil
}

// Preset returns the named parameter set.
func (c *Config) Preset(name string) (sim.SimulationParameters, error) {
	preset, ok := c.Presets[name]
	if !ok {
		return sim.SimulationParameters{}, fmt.Errorf("unknown preset %q; check defaults.yaml for available presets", name)
	}
	return preset, nil
}
