// Package config loads the mazepath command's settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/gridmap"
	"github.com/katalvlaran/mazepath/turnsearch"
)

// Environment variable names.
const (
	EnvTurnPenalty   = "MAZEPATH_TURN_PENALTY"
	EnvMaxExpansions = "MAZEPATH_MAX_EXPANSIONS"
	EnvStartHeading  = "MAZEPATH_START_HEADING"
	EnvLogLevel      = "MAZEPATH_LOG_LEVEL"
)

// DefaultMaxExpansions is the per-pass expansion cap used when
// MAZEPATH_MAX_EXPANSIONS is unset. Set it to 0 to lift the cap.
const DefaultMaxExpansions = 10_000_000

// ErrInvalidValue indicates an environment variable that could not be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the command's configuration values.
type Config struct {
	TurnPenalty   int64           // Cost of a single quarter turn
	MaxExpansions int             // Cap on expanded states per pass; 0 means unlimited
	StartHeading  gridmap.Heading // Heading the walker faces at the start cell
	LogLevel      logrus.Level    // Minimum level written by the command's logger
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		TurnPenalty:   turnsearch.DefaultTurnPenalty,
		MaxExpansions: DefaultMaxExpansions,
		StartHeading:  gridmap.East,
		LogLevel:      logrus.InfoLevel,
	}
}

// Load reads the given .env files (or ./.env when none are named) into the
// process environment, without overriding variables that are already set,
// and then builds a Config from it. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Default()

	if v, ok := os.LookupEnv(EnvTurnPenalty); ok {
		p, err := strconv.ParseInt(v, 10, 64)
		if err != nil || p < 0 || p > turnsearch.MaxTurnPenalty {
			return Config{}, fmt.Errorf("%w: %s=%q must be an integer in [0, %d]", ErrInvalidValue, EnvTurnPenalty, v, turnsearch.MaxTurnPenalty)
		}
		cfg.TurnPenalty = p
	}
	if v, ok := os.LookupEnv(EnvMaxExpansions); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q must be a non-negative integer", ErrInvalidValue, EnvMaxExpansions, v)
		}
		cfg.MaxExpansions = n
	}
	if v, ok := os.LookupEnv(EnvStartHeading); ok {
		h, err := gridmap.ParseHeading(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, EnvStartHeading, err)
		}
		cfg.StartHeading = h
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// SearchOptions converts the configuration into turnsearch options.
func (c Config) SearchOptions() []turnsearch.Option {
	return []turnsearch.Option{
		turnsearch.WithTurnPenalty(c.TurnPenalty),
		turnsearch.WithMaxExpansions(c.MaxExpansions),
		turnsearch.WithStartHeading(c.StartHeading),
	}
}
