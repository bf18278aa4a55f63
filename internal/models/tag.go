package models

import "strings"

// Tag is a label attached to events. Names are unique across the system.
type Tag struct {
	ID        string
	Name      string
	CreatedAt int64
}

// NormalizeTags trims names, drops empty ones and removes duplicates while
// keeping the first occurrence's order.
func NormalizeTags(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
