package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridironhq/tradegrader/internal/config"
	"github.com/gridironhq/tradegrader/internal/domain"
)

// Fixture is the league+trade input file consumed by both commands.
type Fixture struct {
	League domain.League `yaml:"league"`
	Trade  domain.Trade  `yaml:"trade"`
}

func loadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("failed to parse fixture yaml: %w", err)
	}
	return &fx, nil
}

func loadEngineConfig(path string) (*config.EngineConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
