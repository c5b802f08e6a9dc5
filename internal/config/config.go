// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package config loads layered configuration: built-in defaults, then an
// optional YAML file, then environment variables. Env always wins.
package config

import (
	"fmt"
	"time"

	"github.com/panbord/signage/internal/recommend"
)

// Config is the full process configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Auth      AuthConfig      `koanf:"auth"`
	Demo      DemoConfig      `koanf:"demo"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// Host is the bind address. The demo serves a single in-store
	// screen, so it binds loopback by default.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSOrigins lists allowed browser origins.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimit is the per-IP request allowance per RateLimitWindow.
	// Zero disables limiting.
	RateLimit       int           `koanf:"rate_limit"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// AuthConfig gates the demo mutation endpoints.
type AuthConfig struct {
	// Mode is "jwt" or "none". "none" leaves every endpoint open,
	// for kiosk setups where the control panel runs on the same box.
	Mode string `koanf:"mode"`

	// Username and Password are the single demo operator credential.
	// The password is bcrypt-hashed at startup and compared hashed on
	// every login.
	Username string `koanf:"username"`
	Password string `koanf:"password"`

	// JWTSecret signs session tokens. The default is for local demos
	// only; production kiosks set AUTH_JWT_SECRET.
	JWTSecret string `koanf:"jwt_secret"`

	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration `koanf:"token_ttl"`
}

// DemoConfig tunes the demo session.
type DemoConfig struct {
	// RandomSeed seeds the inventory fallback quantities. Zero seeds
	// from the clock; any other value makes runs reproducible.
	RandomSeed int64 `koanf:"random_seed"`

	// SimulatedHour pre-sets the hour override at startup, -1 for none.
	SimulatedHour int `koanf:"simulated_hour"`

	// SimulatedSeason pre-sets the season override at startup
	// ("spring".."winter"), empty for none.
	SimulatedSeason string `koanf:"simulated_season"`
}

// LoggingConfig mirrors the logging package settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Output string `koanf:"output"`
}

// RecommendConfig tunes the ranking engine.
type RecommendConfig struct {
	// Weights are the default scoring coefficients, adjustable at
	// runtime from the control panel.
	Weights recommend.Weights `koanf:"weights"`

	// SubCount is how many alternate recommendations the display shows.
	SubCount int `koanf:"sub_count"`
}

// defaultConfig returns the built-in defaults, applied before the config
// file and environment layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8480,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimit:       300,
			RateLimitWindow: time.Minute,
		},
		Auth: AuthConfig{
			Mode:      "jwt",
			Username:  "yamanashi",
			Password:  "shingen",
			JWTSecret: "panbord-demo-secret-change-me",
			TokenTTL:  12 * time.Hour,
		},
		Demo: DemoConfig{
			RandomSeed:      0,
			SimulatedHour:   -1,
			SimulatedSeason: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Recommend: RecommendConfig{
			Weights:  recommend.DefaultWeights(),
			SubCount: recommend.DefaultSubCount,
		},
	}
}

// Validate checks cross-field constraints after all layers are applied.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d outside [1,65535]", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative")
	}
	if c.Server.RateLimit > 0 && c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("server.rate_limit_window must be positive when limiting is on")
	}

	switch c.Auth.Mode {
	case "jwt":
		if c.Auth.Username == "" || c.Auth.Password == "" {
			return fmt.Errorf("auth.username and auth.password are required in jwt mode")
		}
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("auth.jwt_secret is required in jwt mode")
		}
		if c.Auth.TokenTTL <= 0 {
			return fmt.Errorf("auth.token_ttl must be positive")
		}
	case "none":
	default:
		return fmt.Errorf("auth.mode %q is not one of jwt, none", c.Auth.Mode)
	}

	if h := c.Demo.SimulatedHour; h != -1 && (h < 0 || h > 23) {
		return fmt.Errorf("demo.simulated_hour %d outside [0,23] (use -1 for none)", h)
	}
	switch c.Demo.SimulatedSeason {
	case "", "spring", "summer", "autumn", "winter":
	default:
		return fmt.Errorf("demo.simulated_season %q is not a season", c.Demo.SimulatedSeason)
	}

	if err := c.Recommend.Weights.Validate(); err != nil {
		return fmt.Errorf("recommend.weights: %w", err)
	}
	if c.Recommend.SubCount < 1 {
		return fmt.Errorf("recommend.sub_count must be at least 1")
	}

	return nil
}
