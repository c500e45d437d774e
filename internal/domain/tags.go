package domain

import "strings"

// ToggleTag flips membership of tag. Toggling the same tag twice restores the original set.
func ToggleTag(tags []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return tags
	}

	out := make([]string, 0, len(tags)+1)
	removed := false
	for _, existing := range tags {
		if existing == tag {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	if !removed {
		out = append(out, tag)
	}

	return out
}

func HasTag(tags []string, tag string) bool {
	for _, existing := range tags {
		if existing == tag {
			return true
		}
	}

	return false
}

// NormalizeTags trims entries, drops empties and keeps the first occurrence of duplicates.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	return out
}

// ParseTagList splits a comma separated entry into a trimmed list without empty strings.
func ParseTagList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}

	return out
}
