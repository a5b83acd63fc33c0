// Package config loads storefront settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting of the storefront server
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8000"`
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	SessionSecret   string        `env:"SESSION_SECRET"`
	SessionIdleTTL  time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	SessionMaxAge   time.Duration `env:"SESSION_MAX_AGE" envDefault:"24h"`
	SessionSweep    time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	NoticeTTL       time.Duration `env:"NOTICE_TTL" envDefault:"3s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	MongoURI        string `env:"MONGO_URI"`
	MongoDatabase   string `env:"MONGO_DATABASE" envDefault:"ecommerce"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"products"`
}

// Prefix is prepended to every environment variable name
const Prefix = "STOREFRONT_"

// Load parses the environment into a Config
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.NoticeTTL <= 0 {
		return Config{}, fmt.Errorf("parse env: %sNOTICE_TTL must be positive", Prefix)
	}
	if cfg.SessionSweep <= 0 {
		return Config{}, fmt.Errorf("parse env: %sSESSION_SWEEP_INTERVAL must be positive", Prefix)
	}
	return cfg, nil
}
