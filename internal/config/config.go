// SPDX-License-Identifier: MIT

// Package config loads and validates qtp run files.
//
// A run file is YAML:
//
//	datafile: barrier.xy
//	mass: 1.008            # daltons
//	temperatures: [200, 800, 50]  # one value, or lower, upper, step (K)
//	zrange: [-2, 2, 0.1]   # optional: lower, upper, step (angstrom)
//	on_error: skip         # abort | skip
//	logging:
//	  level: info
//	  format: console
//	  output: stderr
//
// Command-line flags override the values read from a file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/af0liveira/qtp/internal/logging"
	"github.com/af0liveira/qtp/sweep"
)

// ErrInvalid indicates a configuration that cannot drive a run.
var ErrInvalid = errors.New("config: invalid")

// Config is a complete run description in laboratory units.
type Config struct {
	DataFile     string         `yaml:"datafile"`
	Mass         float64        `yaml:"mass"`
	Temperatures []float64      `yaml:"temperatures"`
	ZRange       []float64      `yaml:"zrange"`
	OnError      string         `yaml:"on_error"`
	Logging      logging.Config `yaml:"logging"`
}

// Default returns a 1 Da particle at 300 K with the default logger.
func Default() Config {
	return Config{
		Mass:         1,
		Temperatures: []float64{300},
		OnError:      sweep.Abort.String(),
		Logging:      logging.DefaultConfig(),
	}
}

// Load reads a YAML run file on top of Default. Keys absent from the file
// keep their default values. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config.Load: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config.Load %s: %w: %w", path, ErrInvalid, err)
	}

	return cfg, nil
}

// Validate checks every field. All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	if c.DataFile == "" {
		errs = append(errs, errors.New("datafile is required"))
	}
	if math.IsNaN(c.Mass) || math.IsInf(c.Mass, 0) || c.Mass <= 0 {
		errs = append(errs, fmt.Errorf("mass must be > 0, got %g", c.Mass))
	}
	if _, err := c.TemperatureGrid(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ZGrid(); err != nil {
		errs = append(errs, err)
	}
	if _, err := sweep.ParseOnError(c.OnError); err != nil {
		errs = append(errs, err)
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// TemperatureGrid expands Temperatures: a single value is used as is, three
// values are a half-open [lower, upper) range with the given step.
func (c Config) TemperatureGrid() ([]float64, error) {
	switch len(c.Temperatures) {
	case 1:
		if t := c.Temperatures[0]; math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			return nil, fmt.Errorf("temperature must be > 0 K, got %g", t)
		}
		return []float64{c.Temperatures[0]}, nil
	case 3:
		ts, err := sweep.Arange(c.Temperatures[0], c.Temperatures[1], c.Temperatures[2])
		if err != nil {
			return nil, fmt.Errorf("temperatures: %w", err)
		}
		if ts[0] <= 0 {
			return nil, fmt.Errorf("temperatures must be > 0 K, got %g", ts[0])
		}
		return ts, nil
	default:
		return nil, fmt.Errorf("temperatures take 1 or 3 values, got %d", len(c.Temperatures))
	}
}

// ZGrid expands ZRange (angstrom). Nil means "use the data file positions".
func (c Config) ZGrid() ([]float64, error) {
	switch len(c.ZRange) {
	case 0:
		return nil, nil
	case 3:
		zs, err := sweep.Arange(c.ZRange[0], c.ZRange[1], c.ZRange[2])
		if err != nil {
			return nil, fmt.Errorf("zrange: %w", err)
		}
		return zs, nil
	default:
		return nil, fmt.Errorf("zrange takes 3 values, got %d", len(c.ZRange))
	}
}
