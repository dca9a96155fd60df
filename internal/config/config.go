// Package config loads the pipeline configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"shape-selector/internal/vision"
)

// Config is the top-level configuration file.
type Config struct {
	// Vision holds the classification pipeline parameters.
	Vision vision.Params `yaml:"vision"`

	// Workers bounds concurrent classifications per stage. Zero means one
	// per CPU.
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Vision: vision.DefaultParams()}
}

// Load reads a YAML file over the defaults. Keys the file omits keep their
// default values; unknown keys are rejected. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot run with.
func (c Config) Validate() error {
	p := c.Vision
	switch {
	case c.Workers < 0:
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	case len(p.MaskThresholds) == 0:
		return errors.New("vision.mask_thresholds must not be empty")
	case len(p.EpsilonFractions) == 0:
		return errors.New("vision.epsilon_fractions must not be empty")
	case p.MinAreaFraction < 0 || p.MaxAreaFraction > 1 || p.MinAreaFraction >= p.MaxAreaFraction:
		return fmt.Errorf("invalid area window [%g, %g]", p.MinAreaFraction, p.MaxAreaFraction)
	case p.BackgroundPatch < 1:
		return fmt.Errorf("vision.background_patch must be >= 1, got %d", p.BackgroundPatch)
	case p.Shape.SquareAspectMin > p.Shape.SquareAspectMax:
		return fmt.Errorf("invalid square aspect range [%g, %g]", p.Shape.SquareAspectMin, p.Shape.SquareAspectMax)
	}
	return nil
}
