package docx

import "strings"

// SplitSentences splits a description on ". ". It is deliberately naive:
// "e.g. foo" splits too, and bullet formatting depends on the exact count.
func SplitSentences(desc string) []string {
	var out []string
	for _, s := range strings.Split(desc, ". ") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func withPeriod(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}
