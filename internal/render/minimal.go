package render

import (
	"resume-builder/internal/model"
)

// Minimal is a centered, light single-column layout.
type Minimal struct{}

func (Minimal) ID() string   { return "minimal" }
func (Minimal) Name() string { return "Minimal" }
func (Minimal) Description() string {
	return "Simple and elegant design with minimal distractions"
}

var (
	minimalHeading = Style{FontSize: "15px", FontWeight: "300", BorderBottom: "1px solid #eee", Padding: "0 0 6px 0", Margin: "0 0 14px 0", TextAlign: "center"}
	minimalEntry   = Style{Margin: "0 0 14px 0"}
	minimalMuted   = Style{Color: "#666", FontSize: "13px", FontWeight: "300"}
)

func (mn Minimal) Render(r *model.Resume, opts Options) *Tree {
	p := r.Personal()
	heading := func(s string) *Node { return text(s, minimalHeading) }

	header := section(SectionHeader, Style{TextAlign: "center", Margin: "0 0 32px 0"}, nil,
		text(placeholder(p.FullName, "Full Name", opts), Style{FontSize: "34px", FontWeight: "300"}),
		text(p.Title, Style{FontSize: "18px", FontWeight: "300", Color: "#666"}),
		group(Style{Display: "flex", Gap: "12px", Margin: "8px 0 0 0"},
			text(p.Email, minimalMuted),
			text(p.Phone, minimalMuted),
			text(p.Location, minimalMuted),
			text(p.LinkedIn, minimalMuted),
			text(p.Website, minimalMuted),
		),
	)

	summary := section(SectionSummary, minimalEntry, heading("About"),
		text(p.Summary, Style{TextAlign: "center", FontWeight: "300"}))

	experience := section(SectionExperience, minimalEntry, heading("Experience"),
		each(r.Experience, func(_ int, e model.Experience) *Node {
			return group(minimalEntry,
				text(model.Join(" at ", e.Title, e.Company), Style{FontWeight: "500"}),
				text(model.Join(" | ", model.DateRange(e.StartDate, e.EndDate, e.Current), e.Location), minimalMuted),
				text(e.Description, Style{FontWeight: "300"}),
			)
		})...)

	education := section(SectionEducation, minimalEntry, heading("Education"),
		each(r.Education, func(_ int, e model.Education) *Node {
			return group(minimalEntry,
				text(model.Join(", ", model.Join(" in ", e.Degree, e.Field), e.Institution), Style{FontWeight: "500"}),
				text(model.Join(" | ", model.DateRange(e.StartDate, e.EndDate, e.Current), e.Location), minimalMuted),
				text(e.Description, Style{FontWeight: "300"}),
			)
		})...)

	skills := section(SectionSkills, minimalEntry, heading("Skills"),
		group(Style{Display: "flex", Gap: "8px"}, each(r.Skills.Valid(), func(_ int, s model.Skill) *Node {
			return chip(s.Name, Style{FontSize: "13px", Color: "#444"})
		})...))

	languages := section(SectionLanguages, minimalEntry, heading("Languages"),
		group(Style{Display: "flex", Gap: "8px"}, each(r.Skills.Languages, func(_ int, l model.Language) *Node {
			if model.Blank(l.Name) {
				return nil
			}
			return chip(model.Join(" · ", l.Name, l.Level), Style{FontSize: "13px", Color: "#444"})
		})...))

	projects := section(SectionProjects, minimalEntry, heading("Projects"),
		each(r.AdditionalInfo.Projects, func(_ int, pr model.Project) *Node {
			return group(minimalEntry,
				text(model.Join(" | ", pr.Title, pr.Date), Style{FontWeight: "500"}),
				text(pr.Description, Style{FontWeight: "300"}),
				link(pr.Link, pr.Link, minimalMuted),
			)
		})...)

	certifications := section(SectionCertifications, minimalEntry, heading("Certifications"),
		each(r.AdditionalInfo.Certifications, func(_ int, c model.Certification) *Node {
			return text(model.Join(" | ", c.Name, c.Issuer, c.Date), Style{FontWeight: "300"})
		})...)

	references := section(SectionReferences, minimalEntry, heading("References"),
		each(r.AdditionalInfo.References, func(_ int, ref model.Reference) *Node {
			return group(minimalEntry,
				text(ref.Name, Style{FontWeight: "500"}),
				text(model.Join(" at ", ref.Position, ref.Company), minimalMuted),
				text(ref.Contact, minimalMuted),
			)
		})...)

	root := box(Style{Padding: "48px", Color: "#333"},
		header, summary, experience, education, skills, languages,
		projects, certifications, references,
	)
	return newTree(mn.ID(), root)
}
