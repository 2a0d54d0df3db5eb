package tools

// FilterDescriptors keeps only the descriptors whose names appear in the
// allow-list, preserving order. An empty or nil allow-list keeps
// everything.
func FilterDescriptors(descs []Descriptor, allowed []string) []Descriptor {
	if len(allowed) == 0 {
		return descs
	}

	set := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		set[name] = true
	}

	var kept []Descriptor
	for _, d := range descs {
		if set[d.Name] {
			kept = append(kept, d)
		}
	}
	return kept
}

// Allowed reports whether name passes the allow-list. An empty or nil
// allow-list allows everything.
func Allowed(name string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == name {
			return true
		}
	}
	return false
}
