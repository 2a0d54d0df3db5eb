package mcp

import (
	"fmt"
	"time"
)

// Defaults applied by NewClient when the corresponding config field is
// unset.
const (
	// DefaultTimeout bounds each discover/invoke call.
	DefaultTimeout = 30 * time.Second

	// DefaultCredentialEnvVar is the environment variable under which a
	// credential is injected into a stdio server subprocess.
	DefaultCredentialEnvVar = "MCP_API_TOKEN"

	// DefaultAuthHeader carries the bearer credential for HTTP servers.
	DefaultAuthHeader = "Authorization"
)

// TransportKind selects how a client reaches its MCP server.
type TransportKind string

const (
	TransportStdio TransportKind = "stdio"
	TransportHTTP  TransportKind = "http"
)

// StdioConfig holds the stdio-transport fields: the command to spawn and
// its argument list, plus an environment overlay merged over the
// caller's base environment.
type StdioConfig struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// HTTPConfig holds the HTTP-transport fields. The client never calls the
// URL itself; the fields feed the provider-native descriptor.
type HTTPConfig struct {
	// ServerURL is the remote MCP endpoint.
	ServerURL string `json:"server_url"`

	// TransportType is "sse", "http", or "streamable-http". Informational
	// for the provider; empty means the provider's default.
	TransportType string `json:"transport_type,omitempty"`

	// RequireApproval is the approval policy: "always", "never", or "once".
	RequireApproval string `json:"require_approval,omitempty"`
}

// ClientConfig configures one MCP client. Exactly one of Stdio or HTTP
// must be populated, matching Transport; a mismatch is a configuration
// error reported by NewClient.
type ClientConfig struct {
	// ServerName is the logical server label, used in failure strings
	// and the provider-native descriptor.
	ServerName string `json:"server_name"`

	// Transport is "stdio" or "http".
	Transport TransportKind `json:"transport"`

	Stdio *StdioConfig `json:"stdio,omitempty"`
	HTTP  *HTTPConfig  `json:"http,omitempty"`

	// AllowedTools optionally restricts the tools the client exposes.
	// Empty means no restriction.
	AllowedTools []string `json:"allowed_tools,omitempty"`

	// Timeout bounds each discover/invoke call. Zero means DefaultTimeout.
	Timeout time.Duration `json:"timeout,omitempty"`

	// Credential is an optional API credential. For stdio it is injected
	// into the subprocess environment under CredentialEnvVar; for HTTP it
	// is rendered as a bearer value under AuthHeader.
	Credential string `json:"-"`

	// CredentialEnvVar names the environment variable for stdio
	// credential injection. Empty means DefaultCredentialEnvVar.
	CredentialEnvVar string `json:"credential_env_var,omitempty"`

	// AuthHeader names the HTTP header for the bearer credential. Empty
	// means DefaultAuthHeader.
	AuthHeader string `json:"auth_header,omitempty"`
}

// withDefaults returns a copy with unset fields filled in.
func (c ClientConfig) withDefaults() ClientConfig {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.CredentialEnvVar == "" {
		c.CredentialEnvVar = DefaultCredentialEnvVar
	}
	if c.AuthHeader == "" {
		c.AuthHeader = DefaultAuthHeader
	}
	return c
}

// validate checks that exactly the chosen transport's fields are
// populated.
func (c ClientConfig) validate() error {
	if c.ServerName == "" {
		return fmt.Errorf("server_name is required")
	}

	switch c.Transport {
	case TransportStdio:
		if c.Stdio == nil {
			return fmt.Errorf("transport %q requires stdio fields", c.Transport)
		}
		if c.HTTP != nil {
			return fmt.Errorf("transport %q must not carry http fields", c.Transport)
		}
		if c.Stdio.Command == "" {
			return fmt.Errorf("stdio transport requires a command")
		}
	case TransportHTTP:
		if c.HTTP == nil {
			return fmt.Errorf("transport %q requires http fields", c.Transport)
		}
		if c.Stdio != nil {
			return fmt.Errorf("transport %q must not carry stdio fields", c.Transport)
		}
		if c.HTTP.ServerURL == "" {
			return fmt.Errorf("http transport requires a server_url")
		}
	default:
		return fmt.Errorf("transport must be %q or %q, got %q",
			TransportStdio, TransportHTTP, c.Transport)
	}
	return nil
}
