package blueprint

import (
	"fmt"
	"strings"
)

// FieldError describes a single violated constraint, identified by the
// field path (e.g. "head.temperature", "arms[1].config.server_name") and
// a human-readable message naming the rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every constraint violated by a candidate
// blueprint. Independent field checks do not short-circuit each other, so
// Violations holds the complete set of problems found in one pass.
type ValidationError struct {
	Violations []FieldError `json:"violations"`
}

// Error implements the error interface, listing all violations.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "blueprint validation failed"
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("blueprint validation failed: %s", strings.Join(msgs, "; "))
}

// add records a violation.
func (e *ValidationError) add(field, format string, args ...any) {
	e.Violations = append(e.Violations, FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// empty reports whether no violations were recorded.
func (e *ValidationError) empty() bool {
	return len(e.Violations) == 0
}

// Has reports whether a violation was recorded for the given field path.
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}
