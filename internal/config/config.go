// Package config loads and validates the engine configuration: the
// valuation scarcity table, the grading thresholds, and the simulation
// limits. Callers construct the engine from an explicit config value; there
// is no package-level singleton.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridironhq/tradegrader/internal/analyzer"
	"github.com/gridironhq/tradegrader/internal/sim"
	"github.com/gridironhq/tradegrader/internal/valuation"
)

// EngineConfig is the full tunable surface of the engine.
type EngineConfig struct {
	Valuation  valuation.ScarcityConfig `yaml:"valuation"`
	Grading    analyzer.GradeThresholds `yaml:"grading"`
	Simulation sim.Config               `yaml:"simulation"`
}

// Default returns the production configuration.
func Default() *EngineConfig {
	return &EngineConfig{
		Valuation:  *valuation.DefaultScarcityConfig(),
		Grading:    *analyzer.DefaultGradeThresholds(),
		Simulation: *sim.DefaultConfig(),
	}
}

// Load reads an engine config from a yaml file. Missing sections fall back
// to defaults; the merged result is validated before being returned.
func Load(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read engine config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section.
func (c *EngineConfig) Validate() error {
	if err := c.Valuation.Validate(); err != nil {
		return fmt.Errorf("valuation: %w", err)
	}
	if err := c.Grading.Validate(); err != nil {
		return fmt.Errorf("grading: %w", err)
	}
	if err := c.Simulation.Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}
