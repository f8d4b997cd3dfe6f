package formatters

import (
	"fmt"
	"strings"
)

type SummaryInput struct {
	Title   string
	Current string
	Skills  []string
}

type SummaryFormatter struct{}

func (SummaryFormatter) Prompt(in SummaryInput) Prompt {
	var task string
	if in.Current != "" {
		task = fmt.Sprintf("Improve the following resume summary for a %s. Make it more professional, engaging, and impactful: %q. Keep it to 2-3 sentences.", in.Title, in.Current)
	} else {
		task = fmt.Sprintf("Write a professional and 2-3 sentence resume summary for a %s. Focus on key skills and experience relevant to the role. The summary should be engaging, professional, and highlight strengths.", in.Title)
	}

	skills := "Focus on general skills relevant to this position."
	if len(in.Skills) > 0 {
		skills = fmt.Sprintf("Incorporate the following skills in the summary: %s.", strings.Join(in.Skills, ", "))
	}

	text := task + "\n\n" + skills + "\n\nDo not use placeholder text or mention AI in the response. Do not include the person's name in the summary."
	return Prompt{Kind: KindSummary, Text: text, Temperature: 0.7, MaxOutputTokens: 150, TopP: 0.8, TopK: 40}
}

func (SummaryFormatter) Clean(out string) string {
	return trimQuotes(out)
}
