package mcp

import "fmt"

// FailureKind categorizes a failed MCP call so the calling agent loop
// can react appropriately (e.g. retry a timeout with a larger budget,
// but not a protocol error).
type FailureKind string

const (
	// FailureBadArguments: the argument payload could not be parsed as
	// structured data.
	FailureBadArguments FailureKind = "invalid_arguments"

	// FailureTransport: the process failed to spawn, exited early, or
	// the connection could not be established.
	FailureTransport FailureKind = "transport"

	// FailureProtocol: the server returned an error for the request.
	FailureProtocol FailureKind = "protocol"

	// FailureTimeout: the call exceeded the client's configured bound.
	FailureTimeout FailureKind = "timeout"
)

// CallError is a categorized MCP call failure. Its Error string carries
// the uniform "mcp error" prefix that invocation results surface to the
// calling agent.
type CallError struct {
	Kind   FailureKind
	Server string
	Err    error
}

// Error implements the error interface.
func (e *CallError) Error() string {
	return fmt.Sprintf("mcp error (%s): server %q: %v", e.Kind, e.Server, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CallError) Unwrap() error {
	return e.Err
}

// callError builds a CallError from a format string.
func callError(kind FailureKind, server, format string, args ...any) *CallError {
	return &CallError{Kind: kind, Server: server, Err: fmt.Errorf(format, args...)}
}
