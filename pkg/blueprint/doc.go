// Package blueprint defines the declarative agent blueprint and its
// validation engine. A blueprint describes an agent in five parts:
// head (model selection), arms (tool configurations), legs (execution
// topology), heart (memory policy), and spine (safety guardrails).
//
// Validation is eager and complete: Validate collects every violated
// constraint across all components before failing, so a caller sees the
// full set of problems at once. A blueprint that passes validation is
// immutable; derived variants (such as WithID) produce new instances.
//
// Arm configurations are type-tagged open maps. Each arm type carries its
// own rule set, dispatched by the type tag; the mcp_tool rules mirror
// exactly what the pkg/tools/mcp client layer can execute.
package blueprint
