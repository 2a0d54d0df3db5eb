package registry

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vitruvio-dev/vitruvio/pkg/blueprint"
	"github.com/vitruvio-dev/vitruvio/pkg/tools"
	"github.com/vitruvio-dev/vitruvio/pkg/tools/mcp"
)

func stdioArm(server, command string) blueprint.ArmConfig {
	return blueprint.ArmConfig{
		Type: blueprint.ArmMCPTool,
		Config: map[string]any{
			"server_name": server,
			"command":     command,
			"args":        []any{"--stdio"},
			"env":         map[string]any{"LOG_LEVEL": "debug"},
		},
	}
}

func httpArm(url string) blueprint.ArmConfig {
	return blueprint.ArmConfig{
		Type: blueprint.ArmMCPTool,
		Config: map[string]any{
			"server_url":    url,
			"allowed_tools": []any{"search"},
		},
	}
}

func TestBuildStdioHandle(t *testing.T) {
	h, err := New().Build(stdioArm("files", "mcp-files"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if h.Kind != tools.ToolKindMCP {
		t.Errorf("kind = %q", h.Kind)
	}
	if h.Name != "files" {
		t.Errorf("name = %q", h.Name)
	}
	if h.MCP == nil {
		t.Fatal("expected a constructed MCP client")
	}

	cfg := h.MCP.Config()
	if cfg.Transport != mcp.TransportStdio {
		t.Errorf("transport = %q", cfg.Transport)
	}
	if cfg.Stdio.Command != "mcp-files" {
		t.Errorf("command = %q", cfg.Stdio.Command)
	}
	if len(cfg.Stdio.Args) != 1 || cfg.Stdio.Args[0] != "--stdio" {
		t.Errorf("args = %v", cfg.Stdio.Args)
	}
	if cfg.Stdio.Env["LOG_LEVEL"] != "debug" {
		t.Errorf("env = %v", cfg.Stdio.Env)
	}
}

func TestBuildHTTPHandleNameFallsBackToURL(t *testing.T) {
	h, err := New().Build(httpArm("https://mcp.invalid/mcp"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Unnamed HTTP arms are labelled by their URL.
	if h.Name != "https://mcp.invalid/mcp" {
		t.Errorf("name = %q", h.Name)
	}
	if got := h.MCP.Config().AllowedTools; len(got) != 1 || got[0] != "search" {
		t.Errorf("allowed tools = %v", got)
	}
}

func TestBuildNonMCPHandles(t *testing.T) {
	r := New()

	for _, tt := range []struct {
		arm  blueprint.ArmConfig
		kind tools.ToolKind
	}{
		{blueprint.ArmConfig{Type: blueprint.ArmTavilySearch, Config: map[string]any{"max_results": 3}}, tools.ToolKindSearch},
		{blueprint.ArmConfig{Type: blueprint.ArmHTTPTool, Config: map[string]any{"url": "https://api.invalid"}}, tools.ToolKindHTTP},
	} {
		h, err := r.Build(tt.arm)
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", tt.arm.Type, err)
		}
		if h.Kind != tt.kind {
			t.Errorf("kind = %q, want %q", h.Kind, tt.kind)
		}
		if h.MCP != nil {
			t.Errorf("%s handle must not carry an MCP client", tt.arm.Type)
		}
		if h.Config == nil {
			t.Errorf("%s handle must carry the arm config", tt.arm.Type)
		}
	}
}

func TestBuildRejectsInvalidArm(t *testing.T) {
	invalid := blueprint.ArmConfig{Type: blueprint.ArmMCPTool, Config: map[string]any{}}

	before := counterValue(t, handleBuilds, "mcp_tool", "invalid")

	if _, err := New().Build(invalid); err == nil {
		t.Fatal("expected a build error for an invalid arm")
	}

	if got := counterValue(t, handleBuilds, "mcp_tool", "invalid"); got != before+1 {
		t.Errorf("invalid-build counter = %v, want %v", got, before+1)
	}
}

func TestBuildAllAbortsOnFailure(t *testing.T) {
	b := blueprint.AgentBlueprint{
		Arms: []blueprint.ArmConfig{
			stdioArm("files", "mcp-files"),
			{Type: blueprint.ArmMCPTool, Config: map[string]any{}},
		},
	}

	handles, err := New().BuildAll(b)
	if err == nil {
		t.Fatal("expected BuildAll to fail")
	}
	if handles != nil {
		t.Errorf("expected no partial handle set, got %d handles", len(handles))
	}
	if !strings.Contains(err.Error(), "arm 1") {
		t.Errorf("error %q does not name the failing arm", err)
	}
}

func TestBuildAllPreservesOrder(t *testing.T) {
	b := blueprint.AgentBlueprint{
		Arms: []blueprint.ArmConfig{
			{Type: blueprint.ArmTavilySearch, Config: map[string]any{}},
			stdioArm("files", "mcp-files"),
			{Type: blueprint.ArmHTTPTool, Config: map[string]any{}},
		},
	}

	handles, err := New().BuildAll(b)
	if err != nil {
		t.Fatalf("BuildAll failed: %v", err)
	}

	want := []tools.ToolKind{tools.ToolKindSearch, tools.ToolKindMCP, tools.ToolKindHTTP}
	for i, kind := range want {
		if handles[i].Kind != kind {
			t.Errorf("handle %d kind = %q, want %q", i, handles[i].Kind, kind)
		}
	}
}

func TestRegistryOptionsPropagate(t *testing.T) {
	r := New(
		WithCredential("tok-9"),
		WithCredentialEnvVar("FILES_TOKEN"),
		WithAuthHeader("X-Api-Key"),
		WithTimeout(7*time.Second),
	)

	h, err := r.Build(stdioArm("files", "mcp-files"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	cfg := h.MCP.Config()
	if cfg.Credential != "tok-9" {
		t.Errorf("credential = %q", cfg.Credential)
	}
	if cfg.CredentialEnvVar != "FILES_TOKEN" {
		t.Errorf("credential env var = %q", cfg.CredentialEnvVar)
	}
	if cfg.AuthHeader != "X-Api-Key" {
		t.Errorf("auth header = %q", cfg.AuthHeader)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("timeout = %s", cfg.Timeout)
	}
}

func TestInvokeOnNonMCPHandle(t *testing.T) {
	h, err := New().Build(blueprint.ArmConfig{Type: blueprint.ArmTavilySearch, Config: map[string]any{}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	result := h.Invoke(context.Background(), tools.ToolCall{ID: "c1", Name: "tavily_search"})
	if !result.IsError {
		t.Fatal("expected an error result")
	}
	if result.CallID != "c1" {
		t.Errorf("call ID = %q", result.CallID)
	}
	if !strings.Contains(result.Output, "not executed by the core") {
		t.Errorf("output = %q", result.Output)
	}
}

func TestInvokeRecordsMetrics(t *testing.T) {
	h, err := New().Build(httpArm("https://mcp.invalid/mcp"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	before := counterValue(t, mcpInvocations, h.Name, "ok")

	result := h.Invoke(context.Background(), tools.ToolCall{
		ID:        "c2",
		Name:      "search",
		Arguments: `{"query":"go"}`,
	})
	if result.IsError {
		t.Fatalf("unexpected error result: %s", result.Output)
	}

	if got := counterValue(t, mcpInvocations, h.Name, "ok"); got != before+1 {
		t.Errorf("invocation counter = %v, want %v", got, before+1)
	}
}

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	var m dto.Metric
	if err := vec.WithLabelValues(labels...).Write(&m); err != nil {
		t.Fatalf("reading counter: %v", err)
	}
	return m.GetCounter().GetValue()
}
