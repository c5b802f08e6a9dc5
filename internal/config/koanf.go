// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/panbord/config.yaml",
	"/etc/panbord/config.yml",
}

// ConfigPathEnvVar overrides the config file search entirely.
const ConfigPathEnvVar = "SIGNAGE_CONFIG"

// envPrefix namespaces every configuration environment variable.
const envPrefix = "SIGNAGE_"

// Load assembles the configuration from three layers, later layers
// overriding earlier ones:
//  1. built-in defaults
//  2. an optional YAML file (SIGNAGE_CONFIG or the default paths)
//  3. SIGNAGE_* environment variables
//
// The merged result is validated before it is returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := splitSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings names every supported environment variable explicitly.
// Section-name underscores make a generic transform ambiguous
// (SIGNAGE_SERVER_SHUTDOWN_TIMEOUT), so the table stays authoritative.
var envMappings = map[string]string{
	"server_host":              "server.host",
	"server_port":              "server.port",
	"server_shutdown_timeout":  "server.shutdown_timeout",
	"server_cors_origins":      "server.cors_origins",
	"server_rate_limit":        "server.rate_limit",
	"server_rate_limit_window": "server.rate_limit_window",

	"auth_mode":       "auth.mode",
	"auth_username":   "auth.username",
	"auth_password":   "auth.password",
	"auth_jwt_secret": "auth.jwt_secret",
	"auth_token_ttl":  "auth.token_ttl",

	"demo_random_seed":      "demo.random_seed",
	"demo_simulated_hour":   "demo.simulated_hour",
	"demo_simulated_season": "demo.simulated_season",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_output": "logging.output",

	"recommend_weight_profit":    "recommend.weights.profit",
	"recommend_weight_time_slot": "recommend.weights.time_slot",
	"recommend_weight_season":    "recommend.weights.season",
	"recommend_weight_inventory": "recommend.weights.inventory",
	"recommend_sub_count":        "recommend.sub_count",
}

// envTransform maps SIGNAGE_SERVER_PORT to server.port and so on.
// Unknown variables map to nothing and are ignored.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return envMappings[key]
}

// sliceConfigPaths lists the fields that arrive comma-separated from the
// environment but must unmarshal as slices.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

func splitSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		str, ok := val.(string)
		if !ok || str == "" {
			continue
		}
		parts := strings.Split(str, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			if err := k.Set(path, out); err != nil {
				return fmt.Errorf("set %s: %w", path, err)
			}
		}
	}
	return nil
}
