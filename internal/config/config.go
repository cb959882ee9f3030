// Package config provides configuration management for the tempo tool.
// User defaults for sampling are stored in JSON format at ~/.tempo.json:
//
//   - sample_count: samples collected per benchmark (default 50)
//   - min_sample_seconds: minimum cumulative duration per sample (default 0.5)
//
// Missing or unparsable configuration files yield empty configurations so
// the tool always works with sensible defaults.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"tempo/internal/bench"
)

// Config holds user defaults for benchmark runs.
type Config struct {
	SampleCount      int     `json:"sample_count,omitempty"`
	MinSampleSeconds float64 `json:"min_sample_seconds,omitempty"`
}

// Path returns the absolute path to the tempo configuration file (~/.tempo.json).
func Path() string {
	home := os.Getenv("HOME")
	if home == "" {
		if wd, _ := os.Getwd(); wd != "" {
			return filepath.Join(wd, ".tempo.json")
		}
	}
	return filepath.Join(home, ".tempo.json")
}

// Load reads configuration from disk. If missing, returns an empty config and nil error.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return &Config{}, nil // treat parse issues as empty config (non-fatal)
	}
	return &cfg, nil
}

// Save writes configuration to disk.
func Save(cfg *Config) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(), b, 0o644)
}

// BenchConfig applies the user's defaults on top of the built-in ones.
func (c *Config) BenchConfig() bench.Config {
	bc := bench.DefaultConfig()
	if c == nil {
		return bc
	}
	if c.SampleCount > 0 {
		bc.SampleCount = c.SampleCount
	}
	if c.MinSampleSeconds > 0 {
		bc.MinSampleTime = time.Duration(c.MinSampleSeconds * float64(time.Second))
	}
	return bc
}
