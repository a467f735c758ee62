// Package config holds the tunable knobs of the analysis pipeline. Word
// lists and rule tables are compiled-in immutable data and deliberately not
// configurable; only thresholds, bounds, and capacities live here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full pipeline configuration.
type Config struct {
	// StateThreshold is the score at or above which a state bit is set.
	StateThreshold float64 `yaml:"state_threshold"`

	// SimilarityThreshold gates equivalence grouping.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`

	// MultiwayMaxDepth bounds the rewrite search tree.
	MultiwayMaxDepth int `yaml:"multiway_max_depth"`

	// CacheCapacity bounds the result cache. Zero disables caching.
	CacheCapacity int `yaml:"cache_capacity"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		StateThreshold:      0.6,
		SimilarityThreshold: 0.8,
		MultiwayMaxDepth:    2,
		CacheCapacity:       256,
	}
}

// Load reads a YAML config file, filling unset fields from Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot honor.
func (c Config) Validate() error {
	if c.StateThreshold < 0 || c.StateThreshold > 1 {
		return fmt.Errorf("config: state_threshold %.2f outside [0,1]", c.StateThreshold)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("config: similarity_threshold %.2f outside [0,1]", c.SimilarityThreshold)
	}
	if c.MultiwayMaxDepth < 0 {
		return fmt.Errorf("config: multiway_max_depth must be non-negative, got %d", c.MultiwayMaxDepth)
	}
	if c.CacheCapacity < 0 {
		return fmt.Errorf("config: cache_capacity must be non-negative, got %d", c.CacheCapacity)
	}
	return nil
}
