package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, VITRUVIO_CONFIG env,
//     ./vitruvio.yaml, /etc/vitruvio/config.yaml)
//  3. Environment variable overrides
//  4. Validation
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
// 1. Explicit configPath argument
// 2. VITRUVIO_CONFIG environment variable
// 3. ./vitruvio.yaml in the current directory
// 4. /etc/vitruvio/config.yaml
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if envPath := os.Getenv("VITRUVIO_CONFIG"); envPath != "" {
		return envPath
	}

	candidates := []string{
		"vitruvio.yaml",
		"/etc/vitruvio/config.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps environment variables to config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VITRUVIO_BLUEPRINT_DIR"); v != "" {
		cfg.Blueprints.Dir = v
	}
	if v := os.Getenv("VITRUVIO_MCP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.MCP.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("VITRUVIO_MCP_CREDENTIAL"); v != "" {
		cfg.MCP.Credential = v
	}
	if v := os.Getenv("VITRUVIO_MCP_CREDENTIAL_ENV_VAR"); v != "" {
		cfg.MCP.CredentialEnvVar = v
	}
	if v := os.Getenv("VITRUVIO_MCP_AUTH_HEADER"); v != "" {
		cfg.MCP.AuthHeader = v
	}
	if v := os.Getenv("VITRUVIO_METRICS"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}
}
