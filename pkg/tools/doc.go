// Package tools defines the shared types of the vitruvio tool layer:
// the ToolKind classification mirroring blueprint arm types, the
// Descriptor produced by tool discovery, and the ToolCall/ToolResult
// pair used for invocation.
//
// The package also provides allow-list filtering for discovered
// descriptors. It has no external dependencies.
package tools
