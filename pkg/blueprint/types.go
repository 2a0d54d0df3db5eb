package blueprint

// Provider identifies the LLM provider backing a head.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// HeadConfig selects the model driving an agent (or a team member).
type HeadConfig struct {
	// Provider is the LLM provider: "openai" or "anthropic".
	Provider Provider `yaml:"provider" json:"provider"`

	// Model is the provider-specific model identifier.
	Model string `yaml:"model" json:"model"`

	// SystemPrompt is an optional system prompt, at most
	// SystemPromptMaxLen characters.
	SystemPrompt string `yaml:"system_prompt,omitempty" json:"system_prompt,omitempty"`

	// Temperature is the sampling temperature in [0.0, 2.0].
	Temperature float64 `yaml:"temperature" json:"temperature"`

	// MaxTokens optionally caps output tokens; must be positive when set.
	MaxTokens *int `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty"`

	// CredentialRef optionally names a stored credential. Resolution is
	// the caller's concern; the core only carries the reference.
	CredentialRef string `yaml:"credential_ref,omitempty" json:"credential_ref,omitempty"`
}

// ArmType tags an arm (tool) configuration with its tool family.
type ArmType string

const (
	ArmTavilySearch ArmType = "tavily_search"
	ArmHTTPTool     ArmType = "http_tool"
	ArmMCPTool      ArmType = "mcp_tool"
)

// ArmConfig is one tool attached to a blueprint: a type tag plus an open
// key/value configuration map whose required keys depend on the type.
// The order of arms in a blueprint is significant and preserved; it
// declares tool precedence.
type ArmConfig struct {
	Type   ArmType        `yaml:"type" json:"type"`
	Config map[string]any `yaml:"config,omitempty" json:"config,omitempty"`
}

// ExecutionMode selects how the agent runs.
type ExecutionMode string

const (
	ModeSingleAgent ExecutionMode = "single_agent"
	ModeWorkflow    ExecutionMode = "workflow"
	ModeTeam        ExecutionMode = "team"
)

// TeamMemberConfig describes one member of a team-mode agent.
type TeamMemberConfig struct {
	// Name and Role identify the member; both are trimmed and must be
	// non-empty.
	Name string `yaml:"name" json:"name"`
	Role string `yaml:"role" json:"role"`

	// Head optionally gives the member its own model configuration. At
	// least one team member must carry a head.
	Head *HeadConfig `yaml:"head,omitempty" json:"head,omitempty"`

	// Arms holds the member's own tools.
	Arms []ArmConfig `yaml:"arms,omitempty" json:"arms,omitempty"`

	// Heart optionally gives the member its own memory policy.
	Heart *HeartConfig `yaml:"heart,omitempty" json:"heart,omitempty"`
}

// LegsConfig declares the agent's execution topology.
type LegsConfig struct {
	// Mode is "single_agent", "workflow", or "team".
	Mode ExecutionMode `yaml:"mode" json:"mode"`

	// WorkflowSteps is the ordered list of step names; required and
	// non-empty when Mode is "workflow".
	WorkflowSteps []string `yaml:"workflow_steps,omitempty" json:"workflow_steps,omitempty"`

	// TeamMembers lists the member agents; required and non-empty when
	// Mode is "team".
	TeamMembers []TeamMemberConfig `yaml:"team_members,omitempty" json:"team_members,omitempty"`
}

// HeartConfig is the agent's memory policy.
type HeartConfig struct {
	MemoryEnabled    bool `yaml:"memory_enabled" json:"memory_enabled"`
	HistoryLength    int  `yaml:"history_length" json:"history_length"`
	KnowledgeEnabled bool `yaml:"knowledge_enabled" json:"knowledge_enabled"`
}

// SpineConfig holds the agent's safety guardrails.
type SpineConfig struct {
	// MaxToolCalls bounds tool invocations per session, in [1, 100].
	MaxToolCalls int `yaml:"max_tool_calls" json:"max_tool_calls"`

	// TimeoutSeconds bounds each operation, in [1, 300].
	TimeoutSeconds int `yaml:"timeout_seconds" json:"timeout_seconds"`

	// AllowedDomains optionally restricts outbound access to the listed
	// hostnames. Each entry must satisfy ValidDomainName.
	AllowedDomains []string `yaml:"allowed_domains,omitempty" json:"allowed_domains,omitempty"`
}

// AgentBlueprint is the complete declarative description of an agent.
// Instances returned by Validate are immutable: any change produces a new
// value, never a mutation, so validation guarantees hold for the object's
// entire lifetime.
type AgentBlueprint struct {
	// ID is an optional identifier assigned after validation, e.g. by a
	// persistence layer. Empty until assigned via WithID.
	ID string `yaml:"id,omitempty" json:"id,omitempty"`

	Name  string      `yaml:"name" json:"name"`
	Head  HeadConfig  `yaml:"head" json:"head"`
	Arms  []ArmConfig `yaml:"arms,omitempty" json:"arms,omitempty"`
	Legs  LegsConfig  `yaml:"legs" json:"legs"`
	Heart HeartConfig `yaml:"heart" json:"heart"`
	Spine SpineConfig `yaml:"spine" json:"spine"`
}

// WithID returns a copy of the blueprint carrying the given identifier.
// The receiver is not modified.
func (b AgentBlueprint) WithID(id string) AgentBlueprint {
	b.ID = id
	return b
}

// DefaultHeart returns the memory policy applied when a blueprint
// document omits the heart section.
func DefaultHeart() HeartConfig {
	return HeartConfig{
		MemoryEnabled: true,
		HistoryLength: 10,
	}
}

// DefaultSpine returns the guardrails applied when a blueprint document
// omits the spine section.
func DefaultSpine() SpineConfig {
	return SpineConfig{
		MaxToolCalls:   10,
		TimeoutSeconds: 60,
	}
}
