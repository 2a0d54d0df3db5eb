// Package mcp provides the MCP (Model Context Protocol) client layer for
// vitruvio tool arms. It reaches an external tool server over one of two
// transports, discovers the server's tools, and invokes them with bounded
// timeouts and uniform failure reporting.
//
// The stdio transport spawns a local subprocess and speaks the protocol
// over its standard streams via the official MCP Go SDK
// (github.com/modelcontextprotocol/go-sdk). Every discover/invoke call
// opens, uses, and closes its own session, so concurrent calls never
// share protocol state; the cost of one process spawn per call is a
// deliberate trade of pooling for isolation. On timeout the session and
// its subprocess are torn down together.
//
// The HTTP transport performs no local protocol I/O at all: it carries a
// static descriptor (server label, URL, allow-list, approval policy,
// auth header) for an LLM provider's native tool-calling mechanism.
// Discovery synthesizes one empty-schema descriptor per allow-listed
// name, and invocation is a descriptive no-op. This is a deliberate
// scope boundary, not a missing feature.
package mcp
