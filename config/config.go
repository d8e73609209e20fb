package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/quantataraxia/jumpsim/models"
)

// Scenario is one parameter set from the config file. Pointer fields
// distinguish "not set, use the default" from an explicit zero.
type Scenario struct {
	Name   string   `yaml:"name"`
	S0     *float64 `yaml:"s0"`
	Mu     *float64 `yaml:"mu"`
	Sigma  *float64 `yaml:"sigma"`
	Lambda *float64 `yaml:"lambda"`
	A      *float64 `yaml:"a"`
	B      *float64 `yaml:"b"`
	T      *float64 `yaml:"t"`
	Nsteps *int     `yaml:"nsteps"`
	Nsim   *int     `yaml:"nsim"`
	Alpha  *float64 `yaml:"alpha"`
	Seed   *uint64  `yaml:"seed"`
	Strike *float64 `yaml:"strike"`
}

// Config holds all application configuration.
type Config struct {
	Output struct {
		Chart   string `yaml:"chart"`
		Results string `yaml:"results"`
	} `yaml:"output"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; it yields a single
// scenario with the model defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("JUMPSIM_CHART"); v != "" {
		cfg.Output.Chart = v
	}
	if v := os.Getenv("JUMPSIM_RESULTS"); v != "" {
		cfg.Output.Results = v
	}
	if v := os.Getenv("JUMPSIM_NSIM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse JUMPSIM_NSIM: %w", err)
		}
		for i := range cfg.Scenarios {
			nsim := n
			cfg.Scenarios[i].Nsim = &nsim
		}
	}
	if v := os.Getenv("JUMPSIM_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse JUMPSIM_SEED: %w", err)
		}
		for i := range cfg.Scenarios {
			seed := n
			cfg.Scenarios[i].Seed = &seed
		}
	}

	// Defaults
	if cfg.Output.Chart == "" {
		cfg.Output.Chart = "paths.png"
	}
	if cfg.Output.Results == "" {
		cfg.Output.Results = "results.json"
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = []Scenario{{Name: "default"}}
	}
	for i := range cfg.Scenarios {
		if cfg.Scenarios[i].Name == "" {
			cfg.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}

	return cfg, nil
}

// Model builds the simulation parameter record for the scenario, starting
// from the model defaults and applying only the fields the scenario sets.
func (s Scenario) Model() models.MertonJumpDiffusion {
	m := models.NewMertonJumpDiffusion()
	if s.S0 != nil {
		m.S0 = *s.S0
	}
	if s.Mu != nil {
		m.Mu = *s.Mu
	}
	if s.Sigma != nil {
		m.Sigma = *s.Sigma
	}
	if s.Lambda != nil {
		m.Lambda = *s.Lambda
	}
	if s.A != nil {
		m.A = *s.A
	}
	if s.B != nil {
		m.B = *s.B
	}
	if s.T != nil {
		m.T = *s.T
	}
	if s.Nsteps != nil {
		m.Nsteps = *s.Nsteps
	}
	if s.Nsim != nil {
		m.Nsim = *s.Nsim
	}
	if s.Alpha != nil {
		m.Alpha = *s.Alpha
	}
	if s.Strike != nil {
		m.Strike = *s.Strike
	}
	if s.Seed != nil {
		seed := *s.Seed
		m.Seed = &seed
	}
	return m
}
