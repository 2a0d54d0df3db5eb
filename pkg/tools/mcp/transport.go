package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vitruvio-dev/vitruvio/pkg/tools"
)

// transport establishes protocol sessions to one MCP server. Branching
// on the transport kind happens only here, never at call sites.
type transport interface {
	// open establishes a fresh session. The session honors ctx: when ctx
	// is canceled, in-flight requests abort and close tears everything
	// down, including any spawned subprocess.
	open(ctx context.Context) (session, error)
}

// session is one open protocol exchange with an MCP server.
type session interface {
	listTools(ctx context.Context) ([]tools.Descriptor, error)
	callTool(ctx context.Context, name string, args map[string]any) (string, error)
	close() error
}

// stdioTransport spawns a local subprocess per session and speaks MCP
// over its standard streams via the SDK's CommandTransport.
type stdioTransport struct {
	cfg ClientConfig

	// newSDKTransport builds a fresh SDK transport per session, plus a
	// reaper run when the connect handshake fails. exec.Cmd values are
	// single-use, so each open constructs a new one. Tests replace this
	// with an in-memory transport factory.
	newSDKTransport func() (mcp.Transport, func(), error)
}

func newStdioTransport(cfg ClientConfig) *stdioTransport {
	t := &stdioTransport{cfg: cfg}
	t.newSDKTransport = t.commandTransport
	return t
}

// commandTransport builds the subprocess transport with the environment
// overlay (and credential, when set) merged over the caller's base
// environment. The returned reaper kills and waits the subprocess; a
// successful session hands teardown to the session's close instead.
func (t *stdioTransport) commandTransport() (mcp.Transport, func(), error) {
	cmd := exec.Command(t.cfg.Stdio.Command, t.cfg.Stdio.Args...)
	cmd.Env = overlayEnv(os.Environ(), t.cfg.Stdio.Env, t.cfg.CredentialEnvVar, t.cfg.Credential)
	reap := func() {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
	}
	return &mcp.CommandTransport{Command: cmd}, reap, nil
}

func (t *stdioTransport) open(ctx context.Context) (session, error) {
	sdkTransport, reap, err := t.newSDKTransport()
	if err != nil {
		return nil, &CallError{Kind: FailureTransport, Server: t.cfg.ServerName, Err: err}
	}

	client := mcp.NewClient(
		&mcp.Implementation{
			Name:    "vitruvio",
			Version: "1.0.0",
		},
		&mcp.ClientOptions{
			Capabilities: &mcp.ClientCapabilities{},
		},
	)

	sess, err := client.Connect(ctx, sdkTransport, nil)
	if err != nil {
		// Connect spawns the subprocess before the handshake; when the
		// handshake fails or the deadline cancels it, the process must
		// not be left running.
		if reap != nil {
			reap()
		}
		return nil, &CallError{
			Kind:   FailureTransport,
			Server: t.cfg.ServerName,
			Err:    fmt.Errorf("connecting: %w", err),
		}
	}
	return &stdioSession{server: t.cfg.ServerName, sess: sess}, nil
}

// stdioSession wraps one SDK ClientSession. Closing it shuts down the
// protocol and reaps the subprocess together.
type stdioSession struct {
	server string
	sess   *mcp.ClientSession
}

func (s *stdioSession) listTools(ctx context.Context) ([]tools.Descriptor, error) {
	var descs []tools.Descriptor
	for tool, err := range s.sess.Tools(ctx, nil) {
		if err != nil {
			return nil, &CallError{
				Kind:   FailureProtocol,
				Server: s.server,
				Err:    fmt.Errorf("listing tools: %w", err),
			}
		}
		d, convErr := convertTool(tool)
		if convErr != nil {
			return nil, &CallError{
				Kind:   FailureProtocol,
				Server: s.server,
				Err:    fmt.Errorf("converting tool %q: %w", tool.Name, convErr),
			}
		}
		descs = append(descs, d)
	}
	return descs, nil
}

func (s *stdioSession) callTool(ctx context.Context, name string, args map[string]any) (string, error) {
	result, err := s.sess.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return "", &CallError{
			Kind:   FailureProtocol,
			Server: s.server,
			Err:    fmt.Errorf("calling tool %q: %w", name, err),
		}
	}
	text := extractText(result)
	if result.IsError {
		return "", callError(FailureProtocol, s.server, "tool %q returned an error: %s", name, text)
	}
	return text, nil
}

func (s *stdioSession) close() error {
	return s.sess.Close()
}

// convertTool converts an SDK Tool to a tools.Descriptor.
func convertTool(t *mcp.Tool) (tools.Descriptor, error) {
	var schema json.RawMessage
	if t.InputSchema != nil {
		data, err := json.Marshal(t.InputSchema)
		if err != nil {
			return tools.Descriptor{}, fmt.Errorf("marshaling input schema: %w", err)
		}
		schema = data
	}

	return tools.Descriptor{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: schema,
	}, nil
}

// extractText joins the textual content parts of a call result with
// newlines.
func extractText(result *mcp.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if tc, ok := content.(*mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// httpTransport carries a static descriptor for an LLM provider's native
// MCP mechanism. It performs no network I/O of its own: sessions are
// synthesized locally and callTool only reports the delegation.
type httpTransport struct {
	cfg ClientConfig
}

func (t *httpTransport) open(_ context.Context) (session, error) {
	return &httpSession{cfg: t.cfg}, nil
}

type httpSession struct {
	cfg ClientConfig
}

// listTools synthesizes one descriptor per allow-listed name. The schema
// fields stay empty: this transport does not introspect the remote
// server.
func (s *httpSession) listTools(_ context.Context) ([]tools.Descriptor, error) {
	descs := make([]tools.Descriptor, 0, len(s.cfg.AllowedTools))
	for _, name := range s.cfg.AllowedTools {
		descs = append(descs, tools.Descriptor{
			Name: name,
			Description: fmt.Sprintf("Remote MCP tool on server %q (%s); executed natively by the LLM provider",
				s.cfg.ServerName, s.cfg.HTTP.ServerURL),
		})
	}
	return descs, nil
}

// callTool does not execute anything: HTTP-transport tools run through
// the provider's native tool-calling mechanism.
func (s *httpSession) callTool(_ context.Context, name string, _ map[string]any) (string, error) {
	return fmt.Sprintf("tool %q on MCP server %q (%s) is executed natively by the LLM provider; no local call was made",
		name, s.cfg.ServerName, s.cfg.HTTP.ServerURL), nil
}

func (s *httpSession) close() error {
	return nil
}
