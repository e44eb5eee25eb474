package utils

import "strings"

// SplitList splits a comma-separated string into trimmed, non-empty values.
// Later values equal to an earlier one (ignoring case) are dropped.
// Returns nil for empty or whitespace-only input.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var result []string
	seen := make(map[string]bool)
	for _, v := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, trimmed)
	}

	return result
}
