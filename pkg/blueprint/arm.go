package blueprint

import "fmt"

// armValidators dispatches per-type arm validation on the type tag.
var armValidators = map[ArmType]func(field string, cfg map[string]any, v *ValidationError){
	ArmTavilySearch: validateTavilyArm,
	ArmHTTPTool:     validateHTTPArm,
	ArmMCPTool:      validateMCPArm,
}

// Validate checks the arm's open configuration map against its declared
// type's contract. It is pure data validation: no network or process
// activity. The returned error, if non-nil, is a *ValidationError
// enumerating every violated rule.
func (a ArmConfig) Validate() error {
	v := &ValidationError{}
	validateArm("arm", a, v)
	if v.empty() {
		return nil
	}
	return v
}

// validateArm runs the type-specific rule set for one arm, recording
// violations under the given field prefix.
func validateArm(field string, a ArmConfig, v *ValidationError) {
	fn, ok := armValidators[a.Type]
	if !ok {
		v.add(field+".type", "type must be %q, %q, or %q, got %q",
			ArmTavilySearch, ArmHTTPTool, ArmMCPTool, a.Type)
		return
	}
	fn(field+".config", a.Config, v)
}

func validateTavilyArm(field string, cfg map[string]any, v *ValidationError) {
	if raw, ok := cfg["max_results"]; ok {
		n, err := asInt(raw)
		if err != nil {
			v.add(field+".max_results", "must be an integer, got %T", raw)
		} else if n < MaxResultsMin || n > MaxResultsMax {
			v.add(field+".max_results", "must be between %d and %d, got %d",
				MaxResultsMin, MaxResultsMax, n)
		}
	}
	if raw, ok := cfg["search_depth"]; ok {
		depth, _ := raw.(string)
		if depth != "basic" && depth != "advanced" {
			v.add(field+".search_depth", `must be "basic" or "advanced", got %v`, raw)
		}
	}
}

// validateHTTPArm imposes no structural constraints; the collaborator
// that executes http_tool arms owns their schema.
func validateHTTPArm(_ string, _ map[string]any, _ *ValidationError) {}

func validateMCPArm(field string, cfg map[string]any, v *ValidationError) {
	_, hasCommand := cfg["command"]
	_, hasURL := cfg["server_url"]

	switch {
	case !hasCommand && !hasURL:
		v.add(field, `mcp_tool requires either "server_url" (HTTP transport) or "command" (stdio transport)`)
		return
	case hasCommand && hasURL:
		v.add(field, `mcp_tool accepts "command" or "server_url", not both`)
		return
	case hasCommand:
		validateMCPStdio(field, cfg, v)
	default:
		validateMCPHTTP(field, cfg, v)
	}
}

// validateMCPStdio checks the stdio-transport shape: command plus a
// required server_name, with optional args (list of strings), env
// (string-to-string map), and allowed_tools (list of strings).
func validateMCPStdio(field string, cfg map[string]any, v *ValidationError) {
	if _, ok := cfg["command"].(string); !ok {
		v.add(field+".command", "must be a string, got %T", cfg["command"])
	}
	name, ok := cfg["server_name"].(string)
	if !ok || name == "" {
		v.add(field+".server_name", "required for stdio transport")
	}
	if raw, ok := cfg["args"]; ok {
		if _, err := asStringList(raw); err != nil {
			v.add(field+".args", "must be a list of strings")
		}
	}
	if raw, ok := cfg["env"]; ok {
		if _, err := asStringMap(raw); err != nil {
			v.add(field+".env", "must be a string-to-string map")
		}
	}
	if raw, ok := cfg["allowed_tools"]; ok {
		if _, err := asStringList(raw); err != nil {
			v.add(field+".allowed_tools", "must be a list of strings")
		}
	}
}

// validateMCPHTTP checks the HTTP-transport shape: server_url plus
// optional transport_type, allowed_tools, and require_approval.
func validateMCPHTTP(field string, cfg map[string]any, v *ValidationError) {
	if _, ok := cfg["server_url"].(string); !ok {
		v.add(field+".server_url", "must be a string, got %T", cfg["server_url"])
	}
	if raw, ok := cfg["transport_type"]; ok {
		tt, _ := raw.(string)
		switch tt {
		case "sse", "http", "streamable-http":
		default:
			v.add(field+".transport_type", `must be "sse", "http", or "streamable-http", got %v`, raw)
		}
	}
	if raw, ok := cfg["allowed_tools"]; ok {
		if _, err := asStringList(raw); err != nil {
			v.add(field+".allowed_tools", "must be a list of strings")
		}
	}
	if raw, ok := cfg["require_approval"]; ok {
		ra, _ := raw.(string)
		switch ra {
		case "always", "never", "once":
		default:
			v.add(field+".require_approval", `must be "always", "never", or "once", got %v`, raw)
		}
	}
}

// asInt coerces the numeric representations produced by YAML and JSON
// decoding into an int. JSON decodes numbers as float64; only whole
// values are accepted.
func asInt(raw any) (int, error) {
	switch n := raw.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("not a whole number: %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("not an integer: %T", raw)
	}
}

// asStringList coerces a decoded list into []string. YAML and JSON both
// decode untyped lists as []any.
func asStringList(raw any) ([]string, error) {
	switch list := raw.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T, not string", i, item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("not a list: %T", raw)
	}
}

// asStringMap coerces a decoded map into map[string]string.
func asStringMap(raw any) (map[string]string, error) {
	switch m := raw.(type) {
	case map[string]string:
		return m, nil
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, val := range m {
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("value for %q is %T, not string", k, val)
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("not a map: %T", raw)
	}
}
