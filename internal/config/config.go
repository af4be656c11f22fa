// Package config loads simulation settings from YAML and turns them into an
// engine configuration.
package config

import (
	_ "embed"
	"fmt"

	"cellsim/internal/core"
	"cellsim/internal/engine"
)

//go:embed defaults/cellsim.yaml
var defaultYAML []byte

// Config is the on-disk configuration.
type Config struct {
	Size    int    `yaml:"size"`
	Rule    string `yaml:"rule"`
	Wrap    bool   `yaml:"wrap"`
	Seed    int64  `yaml:"seed"`
	Workers int    `yaml:"workers"`

	// Params holds per-rule key/value settings keyed by rule name.
	Params map[string]map[string]string `yaml:"params"`

	View ViewConfig `yaml:"view"`
}

// ViewConfig controls the interactive viewer only.
type ViewConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Size:    320,
		Rule:    "life",
		Wrap:    true,
		Seed:    42,
		Workers: 1,
		Params: map[string]map[string]string{
			"cyclic":     {"states": "16", "threshold": "1"},
			"elementary": {"rule": "110"},
		},
		View: ViewConfig{Scale: 2, TPS: 60},
	}
}

// Validate checks the settings that do not depend on the chosen rule.
func (c Config) Validate() error {
	if c.Rule == "" {
		return fmt.Errorf("%w: rule must be set", core.ErrInvalidConfig)
	}
	if c.View.Scale <= 0 {
		return fmt.Errorf("%w: view scale must be > 0, got %d", core.ErrInvalidConfig, c.View.Scale)
	}
	if c.View.TPS <= 0 {
		return fmt.Errorf("%w: view tps must be > 0, got %d", core.ErrInvalidConfig, c.View.TPS)
	}
	return c.Engine().Validate()
}

// Engine converts the file settings into an engine configuration.
func (c Config) Engine() engine.Config {
	return engine.Config{
		Size:    c.Size,
		Rule:    c.Rule,
		Params:  c.Params[c.Rule],
		Wrap:    c.Wrap,
		Seed:    c.Seed,
		Workers: c.Workers,
	}
}
