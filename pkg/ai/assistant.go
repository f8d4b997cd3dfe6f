package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/logger"
	"resume-builder/pkg/ai/formatters"
	"resume-builder/pkg/metrics"
)

var (
	ErrTitleRequired = errors.New("a job title is required")
	errNoGenerator   = errors.New("text generation is not configured")
)

// Result is generated text, or the fallback used in its place.
type Result struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

type SummaryRequest struct {
	Title   string   `json:"title"`
	Current string   `json:"currentSummary"`
	Skills  []string `json:"skills"`
}

type JobDescriptionRequest struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Current   bool   `json:"current"`
	Existing  string `json:"currentDescription"`
}

type SkillsRequest struct {
	Title     string   `json:"title"`
	AllTitles []string `json:"allTitles"`
	Existing  []string `json:"existingSkills"`
}

// Assistant wraps a Generator so callers are never blocked by it: every
// generation failure is logged and answered with deterministic text.
type Assistant struct {
	gen        Generator
	now        func() time.Time
	summary    formatters.SummaryFormatter
	experience formatters.ExperienceFormatter
	skills     formatters.SkillsFormatter
}

// NewAssistant accepts a nil Generator; every answer is then a fallback.
func NewAssistant(gen Generator) *Assistant {
	return &Assistant{gen: gen, now: time.Now}
}

func (a *Assistant) Summary(ctx context.Context, req SummaryRequest) (Result, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return Result{}, ErrTitleRequired
	}
	p := a.summary.Prompt(formatters.SummaryInput{Title: title, Current: req.Current, Skills: req.Skills})
	out, err := a.generate(ctx, p)
	if err != nil {
		return Result{Text: FallbackSummary(title, req.Skills), Fallback: true}, nil
	}
	return Result{Text: a.summary.Clean(out)}, nil
}

func (a *Assistant) JobDescription(ctx context.Context, req JobDescriptionRequest) Result {
	duration := Duration(req.StartDate, req.EndDate, req.Current, a.now())
	p := a.experience.Prompt(formatters.JobDescriptionInput{Title: req.Title, Company: req.Company, Duration: duration, Current: req.Existing})
	out, err := a.generate(ctx, p)
	if err != nil {
		return Result{Text: FallbackJobDescription(req.Title, duration), Fallback: true}
	}
	return Result{Text: a.experience.Clean(out)}
}

// Skills suggests skills for a title. A failed generation yields none.
func (a *Assistant) Skills(ctx context.Context, req SkillsRequest) ([]string, bool) {
	if strings.TrimSpace(req.Title) == "" {
		if frontendRole(req.AllTitles) {
			return append([]string(nil), frontendSkills...), true
		}
		return nil, false
	}
	out, err := a.generate(ctx, a.skills.Prompt(formatters.SkillsInput(req)))
	if err != nil {
		return nil, true
	}
	return a.skills.Parse(out), false
}

func (a *Assistant) generate(ctx context.Context, p formatters.Prompt) (string, error) {
	var err error
	var out string
	if a.gen == nil {
		err = errNoGenerator
	} else {
		out, err = a.gen.Generate(ctx, p)
		if err == nil && strings.TrimSpace(out) == "" {
			err = fmt.Errorf("empty response")
		}
	}
	if err != nil {
		apiErr := &domain.APIError{Kind: p.Kind, Cause: err}
		metrics.AIFallbacks.WithLabelValues(p.Kind).Inc()
		logger.Ctx(ctx).Warn().Err(apiErr).Str("kind", p.Kind).Msg("ai: using fallback text")
		return "", apiErr
	}
	return out, nil
}

func FallbackJobDescription(title, duration string) string {
	if title == "" {
		title = "professional"
	}
	if duration == "" {
		duration = "the duration of my employment"
	}
	return fmt.Sprintf("As a %s, I utilized my skills and experience for %s. I worked on various projects and contributed to the success of the team and organization.", title, duration)
}

// FallbackSummary names at most three skills.
func FallbackSummary(title string, skills []string) string {
	if title == "" {
		title = "professional"
	}
	var named []string
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			named = append(named, s)
		}
		if len(named) == 3 {
			break
		}
	}
	if len(named) == 0 {
		return fmt.Sprintf("Dedicated %s committed to delivering high-quality results and contributing to the success of the team and organization.", title)
	}
	return fmt.Sprintf("Dedicated %s with experience in %s. Committed to delivering high-quality results and contributing to the success of the team and organization.", title, listPhrase(named))
}

func listPhrase(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

var frontendSkills = []string{
	"HTML", "CSS", "JavaScript", "React", "Vue.js", "TypeScript",
	"Responsive Design", "Webpack", "Redux", "UI/UX", "SASS/SCSS", "REST APIs",
}

func frontendRole(titles []string) bool {
	for _, t := range titles {
		t = strings.ToLower(t)
		if strings.Contains(t, "frontend") || strings.Contains(t, "front-end") || strings.Contains(t, "front end") {
			return true
		}
	}
	return false
}
