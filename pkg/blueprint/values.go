package blueprint

// Validation limits for blueprint component fields.
const (
	// TemperatureMin and TemperatureMax bound the head sampling
	// temperature (inclusive).
	TemperatureMin = 0.0
	TemperatureMax = 2.0

	// SystemPromptMaxLen is the maximum system prompt length in characters.
	SystemPromptMaxLen = 10000

	// HistoryLengthMin and HistoryLengthMax bound the heart's
	// conversation history window.
	HistoryLengthMin = 1
	HistoryLengthMax = 100

	// MaxToolCallsMin and MaxToolCallsMax bound the spine's tool call
	// budget per session.
	MaxToolCallsMin = 1
	MaxToolCallsMax = 100

	// TimeoutSecondsMin and TimeoutSecondsMax bound the spine's
	// per-operation timeout.
	TimeoutSecondsMin = 1
	TimeoutSecondsMax = 300

	// MaxResultsMin and MaxResultsMax bound tavily_search max_results.
	MaxResultsMin = 1
	MaxResultsMax = 10
)

// ValidDomainName reports whether s is a bare hostname: dot-separated
// labels of alphanumerics and hyphens, no leading or trailing hyphen per
// label, and a final label of at least two characters. Schemes, ports,
// and paths are rejected.
func ValidDomainName(s string) bool {
	if s == "" || len(s) > 253 {
		return false
	}
	labels := splitLabels(s)
	if labels == nil {
		return false
	}
	for _, label := range labels {
		if !validLabel(label) {
			return false
		}
	}
	// Final label (TLD position) must be at least two characters.
	return len(labels[len(labels)-1]) >= 2
}

// splitLabels splits a hostname on dots, returning nil if any label is
// empty (leading/trailing/double dots).
func splitLabels(s string) []string {
	var labels []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			if i == start {
				return nil
			}
			labels = append(labels, s[start:i])
			start = i + 1
		}
	}
	return labels
}

// validLabel reports whether a single hostname label is well-formed:
// alphanumerics and hyphens only, with no hyphen at either end.
func validLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}
