package blueprint

import "fmt"

// MCPArmSettings is the typed view of a validated mcp_tool arm's
// configuration map, ready for client construction. Exactly one of
// Command or ServerURL is populated.
type MCPArmSettings struct {
	// ServerName labels the server. Required for stdio transport;
	// optional for HTTP.
	ServerName string

	// Stdio transport fields.
	Command string
	Args    []string
	Env     map[string]string

	// HTTP transport fields.
	ServerURL       string
	TransportType   string
	RequireApproval string

	// AllowedTools restricts the exposed tools on either transport.
	AllowedTools []string
}

// Stdio reports whether the settings select the stdio transport.
func (s MCPArmSettings) Stdio() bool {
	return s.Command != ""
}

// MCPSettings validates an mcp_tool arm and extracts its typed settings.
// It fails for arms of any other type and for arms violating the
// mcp_tool rule set.
func (a ArmConfig) MCPSettings() (MCPArmSettings, error) {
	if a.Type != ArmMCPTool {
		return MCPArmSettings{}, fmt.Errorf("arm type is %q, not %q", a.Type, ArmMCPTool)
	}
	if err := a.Validate(); err != nil {
		return MCPArmSettings{}, err
	}

	var s MCPArmSettings
	if name, ok := a.Config["server_name"].(string); ok {
		s.ServerName = name
	}
	if raw, ok := a.Config["allowed_tools"]; ok {
		s.AllowedTools, _ = asStringList(raw)
	}
	if cmd, ok := a.Config["command"].(string); ok {
		s.Command = cmd
		if raw, ok := a.Config["args"]; ok {
			s.Args, _ = asStringList(raw)
		}
		if raw, ok := a.Config["env"]; ok {
			s.Env, _ = asStringMap(raw)
		}
		return s, nil
	}

	s.ServerURL, _ = a.Config["server_url"].(string)
	if tt, ok := a.Config["transport_type"].(string); ok {
		s.TransportType = tt
	}
	if ra, ok := a.Config["require_approval"].(string); ok {
		s.RequireApproval = ra
	}
	return s, nil
}
