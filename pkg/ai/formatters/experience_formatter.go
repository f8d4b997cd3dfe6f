package formatters

import (
	"fmt"
	"regexp"
	"strings"
)

type JobDescriptionInput struct {
	Title    string
	Company  string
	Duration string
	Current  string
}

// MaxDescriptionSentences caps generated job descriptions.
const MaxDescriptionSentences = 3

var (
	sentenceEnd   = regexp.MustCompile(`[.!?]+`)
	sentenceSplit = regexp.MustCompile(`[.!?]+\s+`)
)

type ExperienceFormatter struct{}

func (ExperienceFormatter) Prompt(in JobDescriptionInput) Prompt {
	var task string
	if in.Current != "" {
		task = fmt.Sprintf("I have a job description for a %s position that I've worked for %s.\n"+
			"Here's my current description: %q\n"+
			"Please improve this description to make it more professional and impactful. Clear and understandable for a non-technical audience.",
			in.Title, in.Duration, in.Current)
	} else {
		task = fmt.Sprintf("Generate me a professional job description for my %s position that I've worked for %s at %s by giving long and more detailed statements and make those responsibilities done by me.",
			in.Title, in.Duration, in.Company)
	}
	text := task + `
It is used on resumes.
It will be like the user's job description.
Focus on quality over quantity. Be brief but impactful.
Do not include generic phrases, fluff, or filler text.
Do not use bullet points or numbered lists.
Do not mention AI in the response.`
	return Prompt{Kind: KindJobDescription, Text: text, Temperature: 0.6, MaxOutputTokens: 100, TopP: 0.8, TopK: 40}
}

// Clean trims the answer and cuts it to MaxDescriptionSentences sentences.
func (ExperienceFormatter) Clean(out string) string {
	out = trimQuotes(out)
	if len(sentenceEnd.FindAllString(out, -1)) <= MaxDescriptionSentences {
		return out
	}
	parts := sentenceSplit.Split(out, -1)
	return strings.Join(parts[:MaxDescriptionSentences], ". ") + "."
}
