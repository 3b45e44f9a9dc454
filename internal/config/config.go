package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Setup modes for the opening of a game.
const (
	SetupStarter = "starter" // fixed cities and a full back row for each player
	SetupManual  = "manual"  // players choose city and unit squares
)

// Config holds application configuration loaded from environment variables
// and command-line flags.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL"            envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	Dev         bool   `env:"DEV"                  envDefault:"false"`
	Setup       string `env:"ENCLAVE_SETUP"        envDefault:"starter"`
	Lang        string `env:"ENCLAVE_LANG"         envDefault:"en"`
	ClearScreen bool   `env:"ENCLAVE_CLEAR_SCREEN" envDefault:"true"`
}

// Load reads the environment, then lets flags override it.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "also append logs to this file")
	fs.BoolVar(&cfg.Dev, "dev", cfg.Dev, "colorized development logging")
	fs.StringVar(&cfg.Setup, "setup", cfg.Setup, "opening setup: starter or manual")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "language for prompts (en, es)")
	fs.BoolVar(&cfg.ClearScreen, "clear", cfg.ClearScreen, "clear the screen between players")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks option values that flags and env cannot constrain.
func (c *Config) Validate() error {
	switch c.Setup {
	case SetupStarter, SetupManual:
	default:
		return fmt.Errorf("unknown setup %q (want %s or %s)", c.Setup, SetupStarter, SetupManual)
	}
	return nil
}
