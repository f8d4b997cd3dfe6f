// Package formatters builds the prompts sent to the text generator and
// cleans up what comes back.
package formatters

import "strings"

const (
	KindSummary        = "summary"
	KindJobDescription = "job_description"
	KindSkills         = "skills"
)

// Prompt is one generation request with its sampling settings.
type Prompt struct {
	Kind            string
	Text            string
	Temperature     float32
	MaxOutputTokens int32
	TopP            float32
	TopK            int32
}

// trimQuotes removes surrounding whitespace and one pair of quotes models
// sometimes wrap answers in.
func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
