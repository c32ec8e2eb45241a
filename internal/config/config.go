package config

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	defaultInitialCapacity = 4
	defaultRareThreshold   = 5
	defaultGridRows        = 2
	defaultGridCols        = 3
	defaultLogLevel        = "info"
	minimalCapacity        = 1
)

// Config drives the demo scripts. Values come from the environment over the
// defaults below; the CLI may override them again with flags.
type Config struct {
	InitialCapacity int    `config:"INVENTORY_INITIAL_CAPACITY"`
	RareThreshold   int    `config:"INVENTORY_RARE_THRESHOLD"`
	GridRows        int    `config:"INVENTORY_GRID_ROWS"`
	GridCols        int    `config:"INVENTORY_GRID_COLS"`
	LogLevel        string `config:"LOG_LEVEL"`
}

func Default() Config {
	return Config{
		InitialCapacity: defaultInitialCapacity,
		RareThreshold:   defaultRareThreshold,
		GridRows:        defaultGridRows,
		GridCols:        defaultGridCols,
		LogLevel:        defaultLogLevel,
	}
}

// Load reads the environment on top of Default and normalizes the result.
func Load() (Config, error) {
	cfg := Default()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "load config from environment")
	}
	return cfg.Normalize(), nil
}

// Normalize clamps values the demo cannot use.
func (c Config) Normalize() Config {
	if c.InitialCapacity < minimalCapacity {
		c.InitialCapacity = minimalCapacity
	}
	if c.GridRows < 0 {
		c.GridRows = 0
	}
	if c.GridCols < 0 {
		c.GridCols = 0
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	return c
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, eris.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}
