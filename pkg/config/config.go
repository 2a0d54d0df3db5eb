// Package config provides unified configuration for the vitruvio CLI and
// service surface.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (VITRUVIO_ prefix)
//  4. Validation
package config

import "time"

// Config holds all configuration for vitruvio.
type Config struct {
	Blueprints BlueprintConfig `yaml:"blueprints"`
	MCP        MCPConfig       `yaml:"mcp"`
	Metrics    MetricsConfig   `yaml:"metrics"`
}

// BlueprintConfig holds blueprint location settings.
type BlueprintConfig struct {
	// Dir is the directory searched for blueprint documents when a
	// command is given a bare name instead of a path.
	Dir string `yaml:"dir"` // default: "."
}

// MCPConfig holds defaults applied to every constructed MCP client.
type MCPConfig struct {
	// TimeoutSeconds bounds each discover/invoke call. default: 30
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Credential is the API credential injected into MCP clients.
	Credential string `yaml:"credential"`

	// CredentialEnvVar names the variable for stdio credential
	// injection. default: "MCP_API_TOKEN"
	CredentialEnvVar string `yaml:"credential_env_var"`

	// AuthHeader names the HTTP header carrying the bearer credential.
	// default: "Authorization"
	AuthHeader string `yaml:"auth_header"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // default: false
	Path    string `yaml:"path"`    // default: "/metrics"
}

// Timeout returns the MCP call timeout as a duration.
func (c MCPConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Blueprints: BlueprintConfig{
			Dir: ".",
		},
		MCP: MCPConfig{
			TimeoutSeconds:   30,
			CredentialEnvVar: "MCP_API_TOKEN",
			AuthHeader:       "Authorization",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    "/metrics",
		},
	}
}
