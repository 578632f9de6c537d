package main

import (
	"os"

	"github.com/pkg/errors"
	validator "gopkg.in/validator.v2"
	yaml "gopkg.in/yaml.v2"

	"pmcmax/pmc"
)

// SearchConfig tunes the solver without changing the problem.
type SearchConfig struct {
	// Exhaustive disables the slack heuristic (uniform-cost search).
	Exhaustive bool `yaml:"exhaustive"`
	// Frontier selects the frontier implementation: "heap" or "meld".
	Frontier string `yaml:"frontier" validate:"regexp=^(heap|meld)?$"`
	// ProgressEvery logs progress every N expansions, 0 disables.
	ProgressEvery int `yaml:"progressEvery" validate:"min=0"`
}

// Config is the YAML problem description accepted by --config.
type Config struct {
	Machines  int          `yaml:"machines" validate:"min=1"`
	Durations []int        `yaml:"durations" validate:"min=1"`
	Search    SearchConfig `yaml:"search"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := validator.Validate(&cfg); err != nil {
		return nil, errors.Wrapf(err, "validating config %s", path)
	}
	return &cfg, nil
}

func (c *Config) instance() *pmc.Instance {
	return &pmc.Instance{Name: "config", Machines: c.Machines, Durations: c.Durations}
}
