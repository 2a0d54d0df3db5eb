package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	// mcp.timeout_seconds matches the spine guardrail range.
	if c.MCP.TimeoutSeconds < 1 || c.MCP.TimeoutSeconds > 300 {
		errs = append(errs, fmt.Errorf("mcp.timeout_seconds must be between 1 and 300, got %d", c.MCP.TimeoutSeconds))
	}

	if c.MCP.CredentialEnvVar == "" {
		errs = append(errs, fmt.Errorf("mcp.credential_env_var must not be empty"))
	}

	if c.MCP.AuthHeader == "" {
		errs = append(errs, fmt.Errorf("mcp.auth_header must not be empty"))
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		errs = append(errs, fmt.Errorf("metrics.path is required when metrics.enabled is true"))
	}

	return errors.Join(errs...)
}
