package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read once from CHORESPLIT_* environment variables at startup.
type Config struct {
	Port            string        `env:"PORT"             envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT"       envDefault:"text"`
	Seed            bool          `env:"SEED"             envDefault:"true"`
	RateLimit       float64       `env:"RATE_LIMIT"       envDefault:"10"`
	RateBurst       int           `env:"RATE_BURST"       envDefault:"20"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// AllowedOrigins are host patterns permitted to open /ws from another
	// origin, e.g. "localhost:5173".
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	// TrustProxy keys rate limits on X-Forwarded-For. Leave it off unless a
	// reverse proxy sets the header.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
}

const envPrefix = "CHORESPLIT_"

// Load parses the process environment.
func Load() (*Config, error) {
	return parse(env.Options{Prefix: envPrefix})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: envPrefix, Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("%sRATE_LIMIT must be > 0, got %v", envPrefix, cfg.RateLimit)
	}
	if cfg.RateBurst < 1 {
		return nil, fmt.Errorf("%sRATE_BURST must be >= 1, got %d", envPrefix, cfg.RateBurst)
	}
	return &cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
