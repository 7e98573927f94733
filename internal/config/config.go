// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"SALON_DB_PATH" envDefault:"./data/salon.db"`
	SessionSecret string `env:"SALON_SESSION_SECRET,required"`
	ServerHost    string `env:"SALON_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"SALON_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"SALON_ENV" envDefault:"development"`
	LogLevel      string `env:"SALON_LOG_LEVEL" envDefault:"info"`
	UploadsDir    string `env:"SALON_UPLOADS_DIR" envDefault:"./uploads"`

	// CORSOrigins lists origins allowed to call the public API, comma
	// separated. "*" allows any origin.
	CORSOrigins string `env:"SALON_CORS_ORIGINS" envDefault:"*"`

	// DoSeed enables first-run creation of the default super admin.
	DoSeed bool `env:"SALON_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// AllowedOrigins returns the parsed CORS origin list.
func (c Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("SALON_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	return cfg, nil
}
