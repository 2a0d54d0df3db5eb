package mcp

import "fmt"

// overlayEnv merges the overlay and an optional credential over the base
// environment ("KEY=VALUE" entries). Overlay entries win over base
// entries with the same key; the credential entry wins over both.
func overlayEnv(base []string, overlay map[string]string, credEnvVar, credential string) []string {
	env := make([]string, 0, len(base)+len(overlay)+1)
	env = append(env, base...)
	for k, v := range overlay {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	if credential != "" {
		env = append(env, fmt.Sprintf("%s=%s", credEnvVar, credential))
	}
	// Later entries win for duplicate keys (os/exec semantics), so no
	// dedup pass is needed.
	return env
}

// bearerHeaders renders the credential as a bearer value under the
// configured header name. Returns nil when no credential is set.
func bearerHeaders(header, credential string) map[string]string {
	if credential == "" {
		return nil
	}
	return map[string]string{header: "Bearer " + credential}
}
