// Package config loads the settings of the auction demo from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/luca-patrignani/bridge/domain/bridge"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of an auction run. Fields missing from a YAML
// document keep their default value.
type Config struct {
	// Deals is the number of boards to deal and bid.
	Deals int `yaml:"deals"`
	// Seed drives the dealer. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
	// Dealer is the seat that calls first, written as N, E, S or W.
	Dealer    bridge.Seat `yaml:"dealer"`
	Workers   int         `yaml:"workers"`
	CacheSize int         `yaml:"cache_size"`
	LogLevel  slog.Level  `yaml:"log_level"`
	ShowHands bool        `yaml:"show_hands"`
	// Interpret adds to each call the description of the hands it shows.
	Interpret bool `yaml:"interpret"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Deals:     1,
		Dealer:    bridge.North,
		Workers:   4,
		CacheSize: 1024,
		LogLevel:  slog.LevelInfo,
		ShowHands: true,
		Interpret: true,
	}
}

// Load reads and validates the YAML configuration at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document on top of the defaults and validates the
// result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Deals < 1 {
		return fmt.Errorf("%w: deals must be positive, got %d", ErrInvalidConfig, c.Deals)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size must not be negative, got %d", ErrInvalidConfig, c.CacheSize)
	}
	if !c.Dealer.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, bridge.ErrInvalidSeat)
	}
	return nil
}

// Save writes c as YAML to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
