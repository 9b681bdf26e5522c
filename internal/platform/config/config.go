package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment (and a .env file when present).
type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port int `env:"PORT" envDefault:"3000"`
}

type AuthConfig struct {
	// CredentialsFile holds {"login": ..., "password": ...}. It is re-read on every request.
	CredentialsFile string `env:"ADMIN_CREDENTIALS_FILE" envDefault:"admin_credentials.json"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return Config{}, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Auth.CredentialsFile == "" {
		return Config{}, fmt.Errorf("ADMIN_CREDENTIALS_FILE must not be empty")
	}
	return cfg, nil
}
