// Package config loads runtime settings from the environment.
//
// A .env file in the working directory is read first (development only;
// real environment variables win), then the process environment is parsed
// into Config.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Word list modes.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// Config holds the server's runtime configuration.
type Config struct {
	Port           string        `env:"PORT" envDefault:"5175"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty      bool          `env:"LOG_PRETTY"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	Session Session
	Words   Words
}

// Session configures player session tokens and idle expiry.
type Session struct {
	Secret     string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieName string        `env:"COOKIE_NAME" envDefault:"wordle_session"`
	Secure     bool          `env:"COOKIE_SECURE"`
}

// Words selects where answers come from.
type Words struct {
	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	DB          string `env:"WORDS_DB"`
	Mode        string `env:"WORDS_MODE" envDefault:"random"`
	DailySalt   string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
}

// Load reads .env (if present) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the process environment without touching .env.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Words.Mode {
	case ModeRandom, ModeDaily:
	default:
		return fmt.Errorf("config: WORDS_MODE must be %q or %q, got %q", ModeRandom, ModeDaily, c.Words.Mode)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive, got %s", c.Session.TTL)
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("config: SESSION_SECRET must not be empty")
	}
	return nil
}
