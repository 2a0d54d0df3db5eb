package mcp

// RemoteServerDescriptor is the static configuration an LLM provider's
// native MCP mechanism needs to call an HTTP-transport server directly.
// The core produces this descriptor; it does not participate in the
// invocation itself.
type RemoteServerDescriptor struct {
	ServerLabel     string            `json:"server_label"`
	ServerURL       string            `json:"server_url"`
	TransportType   string            `json:"transport_type,omitempty"`
	AllowedTools    []string          `json:"allowed_tools,omitempty"`
	RequireApproval string            `json:"require_approval,omitempty"`
	Headers         map[string]string `json:"headers,omitempty"`
}

// RemoteDescriptor returns the provider-native descriptor for an
// HTTP-transport client. The second return is false for stdio clients,
// which the core invokes itself.
func (c *Client) RemoteDescriptor() (*RemoteServerDescriptor, bool) {
	if c.cfg.Transport != TransportHTTP {
		return nil, false
	}
	return &RemoteServerDescriptor{
		ServerLabel:     c.cfg.ServerName,
		ServerURL:       c.cfg.HTTP.ServerURL,
		TransportType:   c.cfg.HTTP.TransportType,
		AllowedTools:    c.cfg.AllowedTools,
		RequireApproval: c.cfg.HTTP.RequireApproval,
		Headers:         bearerHeaders(c.cfg.AuthHeader, c.cfg.Credential),
	}, true
}
