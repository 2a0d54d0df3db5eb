// Package registry maps validated blueprint arms to constructed,
// ready-to-use tool handles. For mcp_tool arms it builds an MCP client
// configured per the arm's transport fields, injecting an optional
// credential (stdio environment variable or HTTP bearer header). Arms
// that fail their type-specific validation are rejected before any
// client object is built.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vitruvio-dev/vitruvio/pkg/blueprint"
	"github.com/vitruvio-dev/vitruvio/pkg/tools"
	"github.com/vitruvio-dev/vitruvio/pkg/tools/mcp"
)

// Prometheus metrics for handle construction and MCP tool invocation.
var (
	handleBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitruvio_tool_handles_built_total",
			Help: "Total tool handles built from blueprint arms",
		},
		[]string{"type", "status"},
	)

	mcpInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitruvio_mcp_invocations_total",
			Help: "Total MCP tool invocations through registry handles",
		},
		[]string{"server", "status"},
	)

	mcpInvocationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vitruvio_mcp_invocation_duration_seconds",
			Help:    "MCP tool invocation duration",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"server"},
	)
)

func init() {
	prometheus.MustRegister(
		handleBuilds,
		mcpInvocations,
		mcpInvocationDuration,
	)
}

// Registry builds tool handles from blueprint arms, carrying the
// credential and naming defaults applied to every mcp_tool arm it
// constructs.
type Registry struct {
	credential       string
	credentialEnvVar string
	authHeader       string
	timeout          time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCredential sets the API credential injected into constructed MCP
// clients: into the subprocess environment for stdio transports, as a
// bearer header for HTTP transports.
func WithCredential(token string) Option {
	return func(r *Registry) { r.credential = token }
}

// WithCredentialEnvVar overrides the environment variable name used for
// stdio credential injection (default mcp.DefaultCredentialEnvVar).
func WithCredentialEnvVar(name string) Option {
	return func(r *Registry) { r.credentialEnvVar = name }
}

// WithAuthHeader overrides the HTTP header carrying the bearer
// credential (default mcp.DefaultAuthHeader).
func WithAuthHeader(name string) Option {
	return func(r *Registry) { r.authHeader = name }
}

// WithTimeout overrides the per-call timeout of constructed MCP clients
// (default mcp.DefaultTimeout).
func WithTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// New creates a Registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle is a constructed tool instance for one blueprint arm.
type Handle struct {
	// Kind classifies the tool.
	Kind tools.ToolKind

	// Name labels the handle: the MCP server name for mcp_tool arms,
	// the arm type otherwise.
	Name string

	// Config carries the arm's raw configuration for kinds the core
	// does not execute itself (tavily_search, http_tool).
	Config map[string]any

	// MCP is the constructed client when Kind is ToolKindMCP, nil
	// otherwise.
	MCP *mcp.Client
}

// Invoke routes a tool call through the handle's MCP client, recording
// invocation metrics. Handles of other kinds report a failure result:
// their execution belongs to external collaborators.
func (h *Handle) Invoke(ctx context.Context, call tools.ToolCall) *tools.ToolResult {
	if h.MCP == nil {
		return &tools.ToolResult{
			CallID:  call.ID,
			Output:  fmt.Sprintf("tool kind %q is not executed by the core", h.Kind),
			IsError: true,
		}
	}

	start := time.Now()
	result := h.MCP.Invoke(ctx, call)
	mcpInvocationDuration.WithLabelValues(h.Name).Observe(time.Since(start).Seconds())

	status := "ok"
	if result.IsError {
		status = "error"
	}
	mcpInvocations.WithLabelValues(h.Name, status).Inc()
	return result
}

// Build validates the arm and constructs its tool handle. Arms failing
// their type-specific rule set are rejected before anything is built.
func (r *Registry) Build(arm blueprint.ArmConfig) (*Handle, error) {
	if err := arm.Validate(); err != nil {
		handleBuilds.WithLabelValues(string(arm.Type), "invalid").Inc()
		return nil, fmt.Errorf("building %s handle: %w", arm.Type, err)
	}

	var h *Handle
	switch arm.Type {
	case blueprint.ArmTavilySearch:
		h = &Handle{Kind: tools.ToolKindSearch, Name: string(arm.Type), Config: arm.Config}
	case blueprint.ArmHTTPTool:
		h = &Handle{Kind: tools.ToolKindHTTP, Name: string(arm.Type), Config: arm.Config}
	case blueprint.ArmMCPTool:
		client, err := r.buildMCPClient(arm)
		if err != nil {
			handleBuilds.WithLabelValues(string(arm.Type), "invalid").Inc()
			return nil, err
		}
		h = &Handle{Kind: tools.ToolKindMCP, Name: client.ServerName(), MCP: client}
	default:
		// Unreachable after Validate, kept for defense against new arm
		// types landing without a registry branch.
		handleBuilds.WithLabelValues(string(arm.Type), "invalid").Inc()
		return nil, fmt.Errorf("no handle constructor for arm type %q", arm.Type)
	}

	handleBuilds.WithLabelValues(string(arm.Type), "ok").Inc()
	slog.Debug("built tool handle", "type", arm.Type, "name", h.Name)
	return h, nil
}

// BuildAll constructs handles for every arm of a validated blueprint,
// preserving arm order (which declares tool precedence). Any failure
// aborts the whole build: no partial tool set is returned.
func (r *Registry) BuildAll(b blueprint.AgentBlueprint) ([]*Handle, error) {
	handles := make([]*Handle, 0, len(b.Arms))
	for i, arm := range b.Arms {
		h, err := r.Build(arm)
		if err != nil {
			return nil, fmt.Errorf("arm %d: %w", i, err)
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// buildMCPClient constructs an MCP client from the arm's
// transport-selecting fields.
func (r *Registry) buildMCPClient(arm blueprint.ArmConfig) (*mcp.Client, error) {
	settings, err := arm.MCPSettings()
	if err != nil {
		return nil, err
	}

	cfg := mcp.ClientConfig{
		ServerName:       settings.ServerName,
		AllowedTools:     settings.AllowedTools,
		Timeout:          r.timeout,
		Credential:       r.credential,
		CredentialEnvVar: r.credentialEnvVar,
		AuthHeader:       r.authHeader,
	}

	if settings.Stdio() {
		cfg.Transport = mcp.TransportStdio
		cfg.Stdio = &mcp.StdioConfig{
			Command: settings.Command,
			Args:    settings.Args,
			Env:     settings.Env,
		}
	} else {
		cfg.Transport = mcp.TransportHTTP
		if cfg.ServerName == "" {
			cfg.ServerName = settings.ServerURL
		}
		cfg.HTTP = &mcp.HTTPConfig{
			ServerURL:       settings.ServerURL,
			TransportType:   settings.TransportType,
			RequireApproval: settings.RequireApproval,
		}
	}

	return mcp.NewClient(cfg)
}
