package render

import (
	"fmt"
	"strings"
	"testing"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func minimalResume() *model.Resume {
	return &model.Resume{
		PersonalInfo:       &model.PersonalInfo{FullName: "Jane Doe", Email: "j@x.com"},
		SelectedTemplateID: strp("basic"),
	}
}

func fullResume() *model.Resume {
	return &model.Resume{
		PersonalInfo: &model.PersonalInfo{
			FullName: "Jane Doe", Title: "Engineer", Email: "j@x.com", Phone: "555-0100",
			Location: "Berlin", Summary: "Builds reliable systems.", PhotoURL: "https://cdn.example.com/me.png",
		},
		Experience: []model.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "01/2020", EndDate: "03/2021", Current: true, Description: "Built things."},
			{Title: "Intern", StartDate: "01/2019", EndDate: "12/2019"},
		},
		Education: []model.Education{{Institution: "TU", Degree: "BSc", Field: "CS", StartDate: "2015", Current: true}},
		Skills: model.Skills{
			Skills:    []model.Skill{{Name: "Go"}, {Name: "  "}, {Name: "SQL"}, {Name: ""}},
			Languages: []model.Language{{Name: "German", Level: "Native"}, {Name: "French"}},
		},
		AdditionalInfo: model.AdditionalInfo{
			Projects:       []model.Project{{Title: "Tool", Description: "CLI", Link: "https://example.com/tool"}},
			Certifications: []model.Certification{{Name: "CKA", Issuer: "CNCF", Date: "2022"}},
			References:     []model.Reference{{Name: "Bob", Position: "CTO", Company: "Acme", Contact: "bob@acme.com"}},
		},
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := DefaultRegistry()

	_, err := reg.Lookup(nil)
	require.ErrorIs(t, err, domain.ErrTemplateNotFound)
	_, err = reg.Lookup(strp("fancy"))
	require.ErrorIs(t, err, domain.ErrTemplateNotFound)

	ids := []string{}
	for _, tpl := range reg.List() {
		ids = append(ids, tpl.ID())
		got, err := reg.Lookup(strp(tpl.ID()))
		require.NoError(t, err)
		assert.Equal(t, tpl.Name(), got.Name())
		assert.NotEmpty(t, tpl.Description())
	}
	assert.Equal(t, []string{"basic", "modern", "minimal", "professional"}, ids)
}

func TestTemplates_EmptySectionsOmitted(t *testing.T) {
	for _, tpl := range DefaultRegistry().List() {
		t.Run(tpl.ID(), func(t *testing.T) {
			tree := tpl.Render(minimalResume(), Options{})
			assert.Equal(t, PageWidthMM, tree.WidthMM)
			assert.Equal(t, "210mm", tree.Root.Style.Width)
			for _, name := range []string{SectionSummary, SectionExperience, SectionEducation, SectionSkills,
				SectionLanguages, SectionProjects, SectionCertifications, SectionReferences} {
				assert.Nil(t, tree.Section(name), "section %s should be omitted", name)
			}
			text := tree.Text()
			assert.Contains(t, text, "Jane Doe")
			assert.Contains(t, text, "j@x.com")
			assert.NotContains(t, strings.ToUpper(text), "EXPERIENCE")
		})
	}
}

func TestTemplates_CurrentRendersPresent(t *testing.T) {
	for _, tpl := range DefaultRegistry().List() {
		t.Run(tpl.ID(), func(t *testing.T) {
			tree := tpl.Render(fullResume(), Options{})
			exp := tree.Section(SectionExperience)
			require.NotNil(t, exp)
			text := strings.Join(exp.Texts(), "\n")
			assert.Contains(t, text, "01/2020 - Present")
			assert.NotContains(t, text, "03/2021")

			edu := tree.Section(SectionEducation)
			require.NotNil(t, edu)
			assert.Contains(t, strings.Join(edu.Texts(), "\n"), "2015 - Present")
		})
	}
}

func TestTemplates_BlankSkillsExcluded(t *testing.T) {
	for _, tpl := range DefaultRegistry().List() {
		t.Run(tpl.ID(), func(t *testing.T) {
			tree := tpl.Render(fullResume(), Options{})
			skills := tree.Section(SectionSkills)
			require.NotNil(t, skills)
			assert.Equal(t, 2, skills.Count(KindChip))
		})
	}
}

func TestTemplates_OrderPreserved(t *testing.T) {
	r := fullResume()
	for i := 0; i < 5; i++ {
		r.Skills.Skills = append(r.Skills.Skills, model.Skill{Name: fmt.Sprintf("skill-%d", i)})
	}
	for _, tpl := range DefaultRegistry().List() {
		tree := tpl.Render(r, Options{})
		var chips []string
		tree.Section(SectionSkills).Walk(func(n *Node) {
			if n.Kind == KindChip {
				chips = append(chips, n.Text)
			}
		})
		assert.Equal(t, []string{"Go", "SQL", "skill-0", "skill-1", "skill-2", "skill-3", "skill-4"}, chips, tpl.ID())
	}
}

func TestTemplates_PlaceholderOnlyInPreview(t *testing.T) {
	r := &model.Resume{PersonalInfo: &model.PersonalInfo{Email: "j@x.com"}}
	for _, tpl := range DefaultRegistry().List() {
		t.Run(tpl.ID(), func(t *testing.T) {
			preview := tpl.Render(r, Options{Preview: true}).Text()
			exported := tpl.Render(r, Options{}).Text()
			assert.True(t, strings.Contains(preview, "Full Name") || strings.Contains(preview, "Your Name"))
			assert.NotContains(t, exported, "Full Name")
			assert.NotContains(t, exported, "Your Name")
			assert.NotContains(t, exported, "Professional Title")
		})
	}
}

func TestTemplates_NilPersonalInfoDoesNotPanic(t *testing.T) {
	for _, tpl := range DefaultRegistry().List() {
		assert.NotPanics(t, func() { tpl.Render(&model.Resume{}, Options{}) }, tpl.ID())
	}
}

func TestTemplates_BlankLanguageNamesSkipped(t *testing.T) {
	r := fullResume()
	r.Skills.Languages = []model.Language{{Name: "   ", Level: "Basic"}, {Name: "French", Level: "Fluent"}}
	for _, tpl := range DefaultRegistry().List() {
		t.Run(tpl.ID(), func(t *testing.T) {
			langs := tpl.Render(r, Options{}).Section(SectionLanguages)
			require.NotNil(t, langs)
			joined := strings.Join(langs.Texts(), "|")
			assert.Contains(t, joined, "French")
			assert.NotContains(t, joined, "Basic")
		})
	}
}

func TestLanguageBars(t *testing.T) {
	tree := Modern{}.Render(fullResume(), Options{})
	var percents []int
	tree.Section(SectionLanguages).Walk(func(n *Node) {
		if n.Kind == KindBar {
			percents = append(percents, n.Percent)
		}
	})
	assert.Equal(t, []int{100, 0}, percents)
}

func TestLevelPercent(t *testing.T) {
	assert.Equal(t, 20, LevelPercent("Basic"))
	assert.Equal(t, 60, LevelPercent("Intermediate"))
	assert.Equal(t, 80, LevelPercent("Advanced"))
	assert.Equal(t, 100, LevelPercent("Fluent"))
	assert.Equal(t, 100, LevelPercent("Native"))
	assert.Equal(t, 0, LevelPercent(""))
	assert.Equal(t, 0, LevelPercent("Klingon"))
}

func TestPhotoSource(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/me.png", photoSource("https://cdn.example.com/me.png"))
	assert.Equal(t, placeholderPhoto, photoSource(""))
	assert.Equal(t, placeholderPhoto, photoSource("javascript:alert(1)"))
	assert.Equal(t, placeholderPhoto, photoSource("http://localhost/me.png"))
	assert.Equal(t, placeholderPhoto, photoSource("/placeholder-profile.png"))
	assert.True(t, strings.HasPrefix(placeholderPhoto, "data:image/svg+xml;base64,"))
}

func TestHTML(t *testing.T) {
	tree := Professional{}.Render(fullResume(), Options{})
	html, err := HTML(tree)
	require.NoError(t, err)
	assert.Contains(t, html, `id="resume-root"`)
	assert.Contains(t, html, "width:210mm;")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, `data-role="section:experience"`)
	assert.Contains(t, html, `data-fallback="data:image/svg`)
	assert.NotContains(t, html, "ZgotmplZ")

	r := minimalResume()
	r.PersonalInfo.FullName = "<script>x</script>"
	html, err = HTML(Basic{}.Render(r, Options{}))
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>x</script>")
}

func TestSection_EmptyHeadingNeverEmitted(t *testing.T) {
	n := section("x", Style{}, text("HEADING", Style{}), nil, text(" ", Style{}))
	assert.Nil(t, n)
}
