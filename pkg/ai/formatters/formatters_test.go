package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryPrompt(t *testing.T) {
	p := SummaryFormatter{}.Prompt(SummaryInput{Title: "Data Engineer", Skills: []string{"Go", "SQL"}})
	assert.Equal(t, KindSummary, p.Kind)
	assert.Contains(t, p.Text, "Write a professional and 2-3 sentence resume summary for a Data Engineer.")
	assert.Contains(t, p.Text, "Incorporate the following skills in the summary: Go, SQL.")
	assert.EqualValues(t, 150, p.MaxOutputTokens)

	p = SummaryFormatter{}.Prompt(SummaryInput{Title: "Data Engineer", Current: "I build pipelines."})
	assert.Contains(t, p.Text, `Improve the following resume summary for a Data Engineer`)
	assert.Contains(t, p.Text, "Focus on general skills relevant to this position.")
}

func TestExperienceClean_CapsSentences(t *testing.T) {
	out := ExperienceFormatter{}.Clean(`"Led a team. Shipped v2. Cut costs by 30%. Mentored juniors."`)
	assert.Equal(t, "Led a team. Shipped v2. Cut costs by 30%.", out)

	short := "Built the billing service. Owned on-call."
	assert.Equal(t, short, ExperienceFormatter{}.Clean(short))
}

func TestExperiencePrompt(t *testing.T) {
	p := ExperienceFormatter{}.Prompt(JobDescriptionInput{Title: "Engineer", Company: "Acme", Duration: "2 years"})
	assert.Contains(t, p.Text, "my Engineer position that I've worked for 2 years at Acme")
	assert.Contains(t, p.Text, "Do not use bullet points")
}

func TestSkillsParse(t *testing.T) {
	got := SkillsFormatter{}.Parse("1. Go, Kubernetes,  , go\n- Terraform, \"PostgreSQL\".")
	assert.Equal(t, []string{"Go", "Kubernetes", "Terraform", "PostgreSQL"}, got)
	assert.Empty(t, SkillsFormatter{}.Parse("  "))
}

func TestSkillsPrompt(t *testing.T) {
	p := SkillsFormatter{}.Prompt(SkillsInput{Title: " SRE ", AllTitles: []string{"SRE", "Sysadmin"}, Existing: []string{"Linux"}})
	assert.Contains(t, p.Text, `specifically for a "SRE" role`)
	assert.Contains(t, p.Text, "roles: SRE, Sysadmin.")
	assert.Contains(t, p.Text, "following skills: Linux. DO NOT suggest")
}
