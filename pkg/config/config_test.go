package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VITRUVIO_CONFIG",
		"VITRUVIO_BLUEPRINT_DIR",
		"VITRUVIO_MCP_TIMEOUT",
		"VITRUVIO_MCP_CREDENTIAL",
		"VITRUVIO_MCP_CREDENTIAL_ENV_VAR",
		"VITRUVIO_MCP_AUTH_HEADER",
		"VITRUVIO_METRICS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Blueprints.Dir != "." {
		t.Errorf("blueprint dir = %q", cfg.Blueprints.Dir)
	}
	if cfg.MCP.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d", cfg.MCP.TimeoutSeconds)
	}
	if cfg.MCP.CredentialEnvVar != "MCP_API_TOKEN" {
		t.Errorf("credential env var = %q", cfg.MCP.CredentialEnvVar)
	}
	if cfg.MCP.AuthHeader != "Authorization" {
		t.Errorf("auth header = %q", cfg.MCP.AuthHeader)
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics must default to disabled")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics path = %q", cfg.Metrics.Path)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
blueprints:
  dir: /srv/blueprints
mcp:
  timeout_seconds: 90
  credential_env_var: TAVILY_TOKEN
metrics:
  enabled: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Blueprints.Dir != "/srv/blueprints" {
		t.Errorf("blueprint dir = %q", cfg.Blueprints.Dir)
	}
	if cfg.MCP.TimeoutSeconds != 90 {
		t.Errorf("timeout = %d", cfg.MCP.TimeoutSeconds)
	}
	if cfg.MCP.CredentialEnvVar != "TAVILY_TOKEN" {
		t.Errorf("credential env var = %q", cfg.MCP.CredentialEnvVar)
	}
	// Fields absent from the file keep their defaults.
	if cfg.MCP.AuthHeader != "Authorization" {
		t.Errorf("auth header = %q", cfg.MCP.AuthHeader)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should be enabled")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("VITRUVIO_BLUEPRINT_DIR", "/opt/agents")
	t.Setenv("VITRUVIO_MCP_TIMEOUT", "120")
	t.Setenv("VITRUVIO_MCP_CREDENTIAL", "tok-env")
	t.Setenv("VITRUVIO_MCP_AUTH_HEADER", "X-Api-Key")
	t.Setenv("VITRUVIO_METRICS", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Blueprints.Dir != "/opt/agents" {
		t.Errorf("blueprint dir = %q", cfg.Blueprints.Dir)
	}
	if cfg.MCP.TimeoutSeconds != 120 {
		t.Errorf("timeout = %d", cfg.MCP.TimeoutSeconds)
	}
	if cfg.MCP.Credential != "tok-env" {
		t.Errorf("credential = %q", cfg.MCP.Credential)
	}
	if cfg.MCP.AuthHeader != "X-Api-Key" {
		t.Errorf("auth header = %q", cfg.MCP.AuthHeader)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should be enabled")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("mcp:\n  timeout_seconds: 15\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("VITRUVIO_MCP_TIMEOUT", "45")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MCP.TimeoutSeconds != 45 {
		t.Errorf("timeout = %d, env override must win over the file", cfg.MCP.TimeoutSeconds)
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("VITRUVIO_MCP_TIMEOUT", "900")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Errorf("error %q does not mention the timeout", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.MCP.TimeoutSeconds = 0
	cfg.MCP.CredentialEnvVar = ""
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	for _, want := range []string{"timeout", "credential_env_var", "metrics"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestMCPTimeoutDuration(t *testing.T) {
	cfg := MCPConfig{TimeoutSeconds: 45}
	if got := cfg.Timeout(); got != 45*time.Second {
		t.Errorf("Timeout() = %s", got)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}
