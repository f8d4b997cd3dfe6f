package model

import "strings"

const Present = "Present"

// Blank reports whether s is empty or only whitespace. Blank fields count as
// absent everywhere a value decides layout.
func Blank(s string) bool { return strings.TrimSpace(s) == "" }

// Join concatenates the non-blank parts with sep. A separator only appears
// between two present values.
func Join(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if !Blank(p) {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// DateRange formats "start - end". current overrides any stray end date.
func DateRange(start, end string, current bool) string {
	if current {
		end = Present
	}
	return Join(" - ", start, end)
}
