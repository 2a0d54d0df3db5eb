package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vitruvio-dev/vitruvio/pkg/tools"
)

// NoContentSentinel is returned as the invocation output when a tool ran
// successfully but produced no content, so callers can distinguish "ran,
// no output" from "not run".
const NoContentSentinel = "(tool returned no content)"

// Client reaches one MCP server through its configured transport. Every
// discover/invoke call opens, uses, and closes its own session on an
// isolated goroutine bounded by the configured timeout, so concurrent
// calls share no protocol state and a stalled server cannot block the
// caller's scheduler.
type Client struct {
	cfg       ClientConfig
	transport transport
}

// NewClient constructs a client from the given configuration. Mismatched
// or absent fields for the chosen transport are a configuration error.
func NewClient(cfg ClientConfig) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("mcp client config for %q: %w", cfg.ServerName, err)
	}

	c := &Client{cfg: cfg}
	switch cfg.Transport {
	case TransportStdio:
		c.transport = newStdioTransport(cfg)
	case TransportHTTP:
		c.transport = &httpTransport{cfg: cfg}
	}
	return c, nil
}

// Config returns a copy of the client's effective configuration
// (defaults applied).
func (c *Client) Config() ClientConfig {
	return c.cfg
}

// ServerName returns the logical server label.
func (c *Client) ServerName() string {
	return c.cfg.ServerName
}

// DiscoverTools lists the server's tools, filtered by the allow-list
// when one is configured. For the stdio transport this opens a session,
// issues a list-tools request, and closes the session; for HTTP it
// synthesizes descriptors locally without any network call.
func (c *Client) DiscoverTools(ctx context.Context) ([]tools.Descriptor, error) {
	var descs []tools.Descriptor
	err := c.run(ctx, func(ctx context.Context, s session) error {
		all, err := s.listTools(ctx)
		if err != nil {
			return err
		}
		descs = tools.FilterDescriptors(all, c.cfg.AllowedTools)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("discovered MCP tools", "server", c.cfg.ServerName, "count", len(descs))
	return descs, nil
}

// Invoke calls the named tool with a JSON arguments payload. Failures of
// every category (malformed arguments, transport, protocol, timeout) are
// returned as uniformly prefixed failure strings in the result, never as
// panics, so a tool-calling agent can feed them back into its loop.
func (c *Client) Invoke(ctx context.Context, call tools.ToolCall) *tools.ToolResult {
	var args map[string]any
	if strings.TrimSpace(call.Arguments) != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return failureResult(call.ID, callError(
				FailureBadArguments, c.cfg.ServerName,
				"arguments are not valid JSON: %v", err))
		}
	}

	var output string
	err := c.run(ctx, func(ctx context.Context, s session) error {
		out, err := s.callTool(ctx, call.Name, args)
		output = out
		return err
	})
	if err != nil {
		slog.Warn("MCP tool call failed",
			"server", c.cfg.ServerName,
			"tool", call.Name,
			"error", err,
		)
		return failureResult(call.ID, err)
	}

	if output == "" {
		output = NoContentSentinel
	}
	return &tools.ToolResult{CallID: call.ID, Output: output}
}

// run executes fn with a fresh session on its own goroutine, bounded by
// the client's timeout. The session is closed on every exit path; on
// timeout the context cancellation aborts the in-flight request and the
// goroutine's deferred close reaps the transport (and, for stdio, the
// subprocess) in the background.
func (c *Client) run(ctx context.Context, fn func(context.Context, session) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		s, err := c.transport.open(ctx)
		if err != nil {
			done <- err
			return
		}
		defer s.close()
		done <- fn(ctx, s)
	}()

	select {
	case err := <-done:
		if err != nil && ctx.Err() == context.DeadlineExceeded {
			// The deadline fired while the call was in flight; report it
			// as a timeout, not as the transport/protocol error the
			// aborted request surfaced.
			return c.timeoutError()
		}
		return err
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return c.timeoutError()
		}
		return &CallError{Kind: FailureTransport, Server: c.cfg.ServerName, Err: ctx.Err()}
	}
}

func (c *Client) timeoutError() *CallError {
	return callError(FailureTimeout, c.cfg.ServerName,
		"no response within %s", c.cfg.Timeout)
}

// failureResult renders an error as a tool result the agent can consume.
func failureResult(callID string, err error) *tools.ToolResult {
	return &tools.ToolResult{
		CallID:  callID,
		Output:  err.Error(),
		IsError: true,
	}
}
