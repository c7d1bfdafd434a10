package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// DefaultConfigPath is read when WORDPLAY_CONFIG is not set
const DefaultConfigPath = "./wordplay.yaml"

// Config is the root application configuration
type Config struct {
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
}

// StoreConfig selects where the question bank lives. An empty Path picks
// the driver's default location.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"WORDPLAY_STORE_DRIVER" env-default:"sqlite" validate:"required,oneof=sqlite file memory"`
	Path   string `yaml:"path"   env:"WORDPLAY_STORE_PATH"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"  env:"WORDPLAY_LOG_LEVEL"  env-default:"warn" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"WORDPLAY_LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
}

// Load reads configuration. Priority: ENV > YAML > defaults.
// A .env file in the working directory is loaded into the environment
// first. The YAML path comes from WORDPLAY_CONFIG (fallback
// DefaultConfigPath); a missing default file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	var cfg Config

	path := os.Getenv("WORDPLAY_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	return v.Struct(c)
}

// StorePath returns the configured path, or the default for the driver
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	switch c.Store.Driver {
	case DriverFile:
		return filepath.Join(dataHome(), "wordplay", "bank.json")
	case DriverSQLite:
		return filepath.Join(dataHome(), "wordplay", "bank.db")
	default:
		return ""
	}
}

func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share")
}
