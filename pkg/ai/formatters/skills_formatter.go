package formatters

import (
	"fmt"
	"regexp"
	"strings"
)

type SkillsInput struct {
	Title     string
	AllTitles []string
	Existing  []string
}

// SuggestedSkills is how many skills the prompt asks for.
const SuggestedSkills = 12

var listMarker = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s*`)

type SkillsFormatter struct{}

func (SkillsFormatter) Prompt(in SkillsInput) Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a list of %d technical skills that are CORE and ESSENTIAL specifically for a %q role.\n", SuggestedSkills, strings.TrimSpace(in.Title))
	if len(in.AllTitles) > 0 {
		fmt.Fprintf(&b, "The person has experience in the following roles: %s.\n", strings.Join(in.AllTitles, ", "))
	}
	if len(in.Existing) > 0 {
		fmt.Fprintf(&b, "The user already has the following skills: %s. DO NOT suggest any of these.\n", strings.Join(in.Existing, ", "))
	}
	b.WriteString(`
EXTREMELY IMPORTANT INSTRUCTIONS:
1. ONLY include skills that are considered PRIMARY and CORE for this EXACT job title.
2. DO NOT make assumptions about related fields - focus ONLY on what this specific role typically requires.
3. DO NOT include skills from adjacent specialties unless they are truly essential for this exact role.
4. DO NOT include general professional skills or soft skills.
5. DO NOT duplicate any skills the user already has.
6. Return skills in order of importance/relevance to this specific job title.

For example:
- For a "Frontend Developer": HTML, CSS, JavaScript, React, Vue.js, responsive design, etc.
- For a "Database Administrator": SQL, database optimization, backup procedures, etc.
- For a "Pediatrician": pediatric assessment, growth monitoring, vaccination protocols, etc.

Return only the list of skills separated by commas, without numbering or bullet points.`)
	return Prompt{Kind: KindSkills, Text: b.String(), Temperature: 0.3, MaxOutputTokens: 200, TopP: 0.9, TopK: 40}
}

// Parse splits a comma separated answer, dropping list markers, blanks and
// case-insensitive duplicates.
func (SkillsFormatter) Parse(out string) []string {
	seen := map[string]bool{}
	var skills []string
	for _, line := range strings.Split(out, "\n") {
		for _, s := range strings.Split(line, ",") {
			s = strings.TrimSuffix(listMarker.ReplaceAllString(strings.TrimSpace(s), ""), ".")
			s = trimQuotes(s)
			key := strings.ToLower(s)
			if s == "" || seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, s)
		}
	}
	return skills
}
