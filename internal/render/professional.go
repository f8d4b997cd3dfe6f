package render

import (
	"resume-builder/internal/model"
)

// Professional is a corporate layout with a dark sidebar.
type Professional struct{}

func (Professional) ID() string   { return "professional" }
func (Professional) Name() string { return "Professional" }
func (Professional) Description() string {
	return "Formal corporate resume design for professional settings"
}

const (
	proSidebar = "#34495e"
	proAccent  = "#3498db"
)

var (
	proSideHeading = Style{FontSize: "14px", FontWeight: "700", Color: "#ffffff", BorderBottom: "2px solid " + proAccent, Padding: "0 0 4px 0", Margin: "16px 0 10px 0"}
	proSideText    = Style{FontSize: "13px", Color: "#ecf0f1"}
	proHeading     = Style{FontSize: "18px", FontWeight: "700", Color: "#2c3e50", BorderBottom: "2px solid " + proAccent, Padding: "0 0 4px 0", Margin: "0 0 12px 0"}
	proEntry       = Style{Margin: "0 0 16px 0"}
	proMuted       = Style{Color: "#7f8c8d", FontSize: "13px"}
)

func (pr Professional) Render(r *model.Resume, opts Options) *Tree {
	p := r.Personal()
	sideHeading := func(s string) *Node { return text(s, proSideHeading) }
	heading := func(s string) *Node { return text(s, proHeading) }

	header := section(SectionHeader, Style{Background: "#2c3e50", Padding: "20px", TextAlign: "center"}, nil,
		image(p.PhotoURL, Style{Width: "110px", BorderRadius: "50%", Margin: "0 auto 12px auto"}),
		text(placeholder(p.FullName, "Your Name", opts), Style{FontSize: "22px", FontWeight: "700", Color: "#ffffff"}),
		text(p.Title, Style{FontSize: "14px", Color: proAccent}),
	)

	contact := section(SectionContact, Style{}, sideHeading("CONTACT"),
		text(p.Email, proSideText),
		text(p.Phone, proSideText),
		text(p.Location, proSideText),
		text(p.LinkedIn, proSideText),
		text(p.Website, proSideText),
	)

	skills := section(SectionSkills, Style{}, sideHeading("SKILLS"),
		group(Style{Display: "flex", Gap: "6px"}, each(r.Skills.Valid(), func(_ int, s model.Skill) *Node {
			return chip(s.Name, Style{Background: proAccent, Color: "#ffffff", Padding: "2px 8px", BorderRadius: "4px", FontSize: "12px"})
		})...))

	languages := section(SectionLanguages, Style{}, sideHeading("LANGUAGES"),
		each(r.Skills.Languages, func(_ int, l model.Language) *Node {
			if model.Blank(l.Name) {
				return nil
			}
			return box(Style{Margin: "0 0 8px 0"},
				text(model.Join(" - ", l.Name, l.Level), proSideText),
				bar(LevelPercent(l.Level), Style{Background: proAccent}),
			)
		})...)

	sidebar := box(Style{Width: "33.3333%", Background: proSidebar, Color: "#ffffff"},
		header,
		box(Style{Padding: "0 20px 20px 20px"}, contact, skills, languages),
	)

	summary := section(SectionSummary, proEntry, heading("PROFILE"), text(p.Summary, Style{}))

	experience := section(SectionExperience, proEntry, heading("WORK EXPERIENCE"),
		each(r.Experience, func(_ int, e model.Experience) *Node {
			return group(proEntry,
				text(e.Title, Style{FontSize: "16px", FontWeight: "700"}),
				text(e.Company, Style{Color: proAccent, FontWeight: "600"}),
				text(model.Join(" | ", model.DateRange(e.StartDate, e.EndDate, e.Current), e.Location), proMuted),
				text(e.Description, Style{}),
			)
		})...)

	education := section(SectionEducation, proEntry, heading("EDUCATION"),
		each(r.Education, func(_ int, e model.Education) *Node {
			return group(proEntry,
				text(model.Join(" in ", e.Degree, e.Field), Style{FontSize: "16px", FontWeight: "700"}),
				text(e.Institution, Style{Color: proAccent, FontWeight: "600"}),
				text(model.Join(" | ", model.DateRange(e.StartDate, e.EndDate, e.Current), e.Location), proMuted),
				text(e.Description, Style{}),
			)
		})...)

	projects := section(SectionProjects, proEntry, heading("PROJECTS"),
		each(r.AdditionalInfo.Projects, func(_ int, p model.Project) *Node {
			return group(proEntry,
				text(p.Title, Style{FontWeight: "700"}),
				text(p.Date, proMuted),
				text(p.Description, Style{}),
				link(p.Link, p.Link, Style{Color: proAccent, FontSize: "13px"}),
			)
		})...)

	certifications := section(SectionCertifications, proEntry, heading("CERTIFICATIONS"),
		each(r.AdditionalInfo.Certifications, func(_ int, c model.Certification) *Node {
			return group(Style{Margin: "0 0 10px 0"},
				text(c.Name, Style{FontWeight: "700"}),
				text(model.Join(" | ", c.Issuer, c.Date), proMuted),
			)
		})...)

	references := section(SectionReferences, proEntry, heading("REFERENCES"),
		each(r.AdditionalInfo.References, func(_ int, ref model.Reference) *Node {
			return group(Style{Margin: "0 0 10px 0"},
				text(ref.Name, Style{FontWeight: "700"}),
				text(model.Join(" at ", ref.Position, ref.Company), proMuted),
				text(ref.Contact, proMuted),
			)
		})...)

	content := box(Style{Width: "66.6667%", Padding: "28px"},
		summary, experience, education, projects, certifications, references,
	)

	root := box(Style{Display: "flex", Color: "#2c3e50"}, sidebar, content)
	return newTree(pr.ID(), root)
}
