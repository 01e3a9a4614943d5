package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	WarningsLog    = "log"
	WarningsSilent = "silent"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel     string `env:"ROP_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"ROP_LOG_FORMAT" envDefault:"text"`
	Warnings     string `env:"ROP_WARNINGS" envDefault:"log"`
	BatchWorkers int    `env:"ROP_BATCH_WORKERS" envDefault:"1"`
}

// Load reads the given .env files (".env" when none are given; missing files
// are ignored) and parses the environment. Variables already set win over the
// files.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Warnings) {
	case WarningsLog, WarningsSilent:
	default:
		return fmt.Errorf("%w: ROP_WARNINGS must be %q or %q, got %q", ErrInvalidConfig, WarningsLog, WarningsSilent, c.Warnings)
	}
	if c.BatchWorkers < 1 {
		return fmt.Errorf("%w: ROP_BATCH_WORKERS must be positive, got %d", ErrInvalidConfig, c.BatchWorkers)
	}
	return nil
}

// SilentWarnings reports whether command warnings should be dropped.
func (c Config) SilentWarnings() bool {
	return strings.EqualFold(c.Warnings, WarningsSilent)
}
