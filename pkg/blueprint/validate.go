package blueprint

import (
	"fmt"
	"strings"
)

// Validate checks a candidate blueprint against every structural and
// cross-component invariant. On success it returns the validated
// blueprint, which must be treated as immutable. On failure it returns a
// *ValidationError enumerating all violations; no partially valid
// blueprint is ever returned.
//
// Validation is static and side-effect-free: it runs once at load time,
// never re-validates on read, and is safe to run concurrently over
// independent inputs.
func Validate(b AgentBlueprint) (AgentBlueprint, error) {
	v := &ValidationError{}

	if strings.TrimSpace(b.Name) == "" {
		v.add("name", "name is required")
	}

	validateHead("head", b.Head, v)
	for i, arm := range b.Arms {
		validateArm(fmt.Sprintf("arms[%d]", i), arm, v)
	}
	validateLegs("legs", b.Legs, v)
	validateHeart("heart", b.Heart, v)
	validateSpine("spine", b.Spine, v)

	if !v.empty() {
		return AgentBlueprint{}, v
	}
	return b, nil
}

func validateHead(field string, h HeadConfig, v *ValidationError) {
	switch h.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		v.add(field+".provider", "provider must be %q or %q, got %q",
			ProviderOpenAI, ProviderAnthropic, h.Provider)
	}

	if strings.TrimSpace(h.Model) == "" {
		v.add(field+".model", "model is required")
	}

	if len(h.SystemPrompt) > SystemPromptMaxLen {
		v.add(field+".system_prompt", "must be at most %d characters, got %d",
			SystemPromptMaxLen, len(h.SystemPrompt))
	}

	if h.Temperature < TemperatureMin || h.Temperature > TemperatureMax {
		v.add(field+".temperature", "must be between %g and %g, got %g",
			TemperatureMin, TemperatureMax, h.Temperature)
	}

	if h.MaxTokens != nil && *h.MaxTokens <= 0 {
		v.add(field+".max_tokens", "must be positive, got %d", *h.MaxTokens)
	}
}

func validateLegs(field string, l LegsConfig, v *ValidationError) {
	switch l.Mode {
	case ModeSingleAgent:
		// No additional required fields.
	case ModeWorkflow:
		if len(l.WorkflowSteps) == 0 {
			v.add(field+".workflow_steps", "required and non-empty when mode is %q", ModeWorkflow)
		}
	case ModeTeam:
		if len(l.TeamMembers) == 0 {
			v.add(field+".team_members", "required and non-empty when mode is %q", ModeTeam)
			return
		}
		hasHead := false
		for i, m := range l.TeamMembers {
			mField := fmt.Sprintf("%s.team_members[%d]", field, i)
			validateTeamMember(mField, m, v)
			if m.Head != nil {
				hasHead = true
			}
		}
		if !hasHead {
			v.add(field+".team_members", "at least one member must declare a head")
		}
	default:
		v.add(field+".mode", "mode must be %q, %q, or %q, got %q",
			ModeSingleAgent, ModeWorkflow, ModeTeam, l.Mode)
	}
}

func validateTeamMember(field string, m TeamMemberConfig, v *ValidationError) {
	if strings.TrimSpace(m.Name) == "" {
		v.add(field+".name", "name is required")
	}
	if strings.TrimSpace(m.Role) == "" {
		v.add(field+".role", "role is required")
	}
	if m.Head != nil {
		validateHead(field+".head", *m.Head, v)
	}
	for i, arm := range m.Arms {
		validateArm(fmt.Sprintf("%s.arms[%d]", field, i), arm, v)
	}
	if m.Heart != nil {
		validateHeart(field+".heart", *m.Heart, v)
	}
}

func validateHeart(field string, h HeartConfig, v *ValidationError) {
	if h.HistoryLength < HistoryLengthMin || h.HistoryLength > HistoryLengthMax {
		v.add(field+".history_length", "must be between %d and %d, got %d",
			HistoryLengthMin, HistoryLengthMax, h.HistoryLength)
	}
}

func validateSpine(field string, s SpineConfig, v *ValidationError) {
	if s.MaxToolCalls < MaxToolCallsMin || s.MaxToolCalls > MaxToolCallsMax {
		v.add(field+".max_tool_calls", "must be between %d and %d, got %d",
			MaxToolCallsMin, MaxToolCallsMax, s.MaxToolCalls)
	}
	if s.TimeoutSeconds < TimeoutSecondsMin || s.TimeoutSeconds > TimeoutSecondsMax {
		v.add(field+".timeout_seconds", "must be between %d and %d, got %d",
			TimeoutSecondsMin, TimeoutSecondsMax, s.TimeoutSeconds)
	}
	for i, domain := range s.AllowedDomains {
		if !ValidDomainName(domain) {
			v.add(fmt.Sprintf("%s.allowed_domains[%d]", field, i),
				"not a valid hostname: %q", domain)
		}
	}
}
