package tools

import "encoding/json"

// ToolKind classifies how a tool is hosted and executed.
type ToolKind int

const (
	// ToolKindSearch is a hosted web-search tool (tavily_search arms).
	// Execution is delegated to the search collaborator.
	ToolKindSearch ToolKind = iota

	// ToolKindHTTP is a plain HTTP tool (http_tool arms). The core
	// carries its configuration; execution belongs to the collaborator.
	ToolKindHTTP

	// ToolKindMCP is a tool reached via the Model Context Protocol
	// (mcp_tool arms). The core discovers and invokes these itself
	// through pkg/tools/mcp.
	ToolKindMCP
)

// String returns the arm-type spelling of the kind.
func (k ToolKind) String() string {
	switch k {
	case ToolKindSearch:
		return "tavily_search"
	case ToolKindHTTP:
		return "http_tool"
	case ToolKindMCP:
		return "mcp_tool"
	default:
		return "unknown"
	}
}

// Descriptor describes one discoverable tool: its name, a human-readable
// description, and the structured input-parameter schema. The schema may
// be empty when the transport cannot introspect the remote server.
type Descriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema,omitempty"`
}

// ToolCall represents a request to invoke a tool.
type ToolCall struct {
	// ID is the caller's call identifier, echoed back in the result.
	ID string

	// Name is the tool name.
	Name string

	// Arguments is the JSON-encoded arguments string.
	Arguments string
}

// ToolResult represents the output of a tool invocation.
type ToolResult struct {
	// CallID matches the originating ToolCall.ID.
	CallID string

	// Output is the tool output text. For failed invocations it carries
	// a uniformly prefixed, human-readable failure string so a calling
	// agent can feed it back into its reasoning loop.
	Output string

	// IsError indicates that Output is a failure string.
	IsError bool
}
