package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ioshock/replicate"
	"github.com/katalvlaran/ioshock/shock"
)

// sweepConfig is the YAML surface of a replication sweep:
//
//	shock_sizes: [0.3, 0.7, 1.0]
//	replications: 20
//	type: Demand
//	sample_size: 300
//	seed: 0
//	parallelism: 0
//
// Zero values fall back to the library defaults, so a minimal file may
// set nothing but shock_sizes.
type sweepConfig struct {
	ShockSizes   []float64 `yaml:"shock_sizes"`
	Replications int       `yaml:"replications"`
	Type         string    `yaml:"type"`
	SampleSize   int       `yaml:"sample_size"`
	Seed         int64     `yaml:"seed"`
	Parallelism  int       `yaml:"parallelism"`
}

// loadSweepConfig reads a YAML sweep file and converts it into the
// library config, validating the shock type eagerly.
func loadSweepConfig(path string) (replicate.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return replicate.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var sc sweepConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return replicate.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return sc.toConfig()
}

func (sc sweepConfig) toConfig() (replicate.Config, error) {
	cfg := replicate.DefaultConfig()
	if len(sc.ShockSizes) > 0 {
		cfg.ShockSizes = sc.ShockSizes
	}
	if sc.Replications > 0 {
		cfg.Replications = sc.Replications
	}
	if sc.Type != "" {
		typ, err := shock.ParseType(sc.Type)
		if err != nil {
			return replicate.Config{}, err
		}
		cfg.Type = typ
	}
	if sc.SampleSize > 0 {
		cfg.SampleSize = sc.SampleSize
	}
	cfg.Seed = sc.Seed
	cfg.Parallelism = sc.Parallelism

	return cfg, nil
}
