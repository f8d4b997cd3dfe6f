package render

import (
	"resume-builder/internal/model"
)

// Basic is the classic single-column layout.
type Basic struct{}

func (Basic) ID() string          { return "basic" }
func (Basic) Name() string        { return "Basic" }
func (Basic) Description() string { return "Clean and organized, a classic resume design" }

var (
	basicHeading = Style{FontSize: "18px", FontWeight: "600", BorderBottom: "1px solid #ddd", Padding: "0 0 4px 0", Margin: "0 0 12px 0"}
	basicEntry   = Style{Margin: "0 0 14px 0"}
	basicMuted   = Style{Color: "#666", FontSize: "13px"}
	basicChips   = Style{Display: "flex", Gap: "6px"}
	basicChip    = Style{Padding: "2px 10px", BorderRadius: "12px", FontSize: "12px"}
)

func (b Basic) Render(r *model.Resume, opts Options) *Tree {
	p := r.Personal()
	heading := func(s string) *Node { return text(s, basicHeading) }

	header := section(SectionHeader, Style{TextAlign: "center", Margin: "0 0 20px 0"}, nil,
		text(placeholder(p.FullName, "Full Name", opts), Style{FontSize: "34px", FontWeight: "400"}),
		text(p.Title, Style{FontSize: "20px", Color: "#555"}),
		group(Style{Display: "flex", Gap: "16px", Margin: "8px 0 0 0"},
			text(p.Email, basicMuted),
			text(p.Phone, basicMuted),
			text(p.Location, basicMuted),
			text(p.LinkedIn, basicMuted),
			text(p.Website, basicMuted),
		),
	)

	summary := section(SectionSummary, basicEntry, heading("SUMMARY"), text(p.Summary, Style{}))

	experience := section(SectionExperience, basicEntry, heading("WORK EXPERIENCE"),
		each(r.Experience, func(_ int, e model.Experience) *Node {
			return group(basicEntry,
				text(e.Title, Style{FontSize: "17px", FontWeight: "500"}),
				text(e.Company, Style{FontWeight: "700"}),
				text(model.Join(" | ", model.DateRange(e.StartDate, e.EndDate, e.Current), e.Location), basicMuted),
				text(e.Description, Style{}),
			)
		})...)

	education := section(SectionEducation, basicEntry, heading("EDUCATION"),
		each(r.Education, func(_ int, e model.Education) *Node {
			return group(basicEntry,
				text(model.Join(" in ", e.Degree, e.Field), Style{FontSize: "17px", FontWeight: "500"}),
				text(e.Institution, Style{FontWeight: "700"}),
				text(model.Join(" | ", model.DateRange(e.StartDate, e.EndDate, e.Current), e.Location), basicMuted),
				text(e.Description, Style{}),
			)
		})...)

	skills := section(SectionSkills, basicEntry, heading("SKILLS"),
		group(basicChips, each(r.Skills.Valid(), func(_ int, s model.Skill) *Node {
			return chip(s.Name, basicChip)
		})...))

	languages := section(SectionLanguages, basicEntry, heading("LANGUAGES"),
		group(basicChips, each(r.Skills.Languages, func(_ int, l model.Language) *Node {
			if model.Blank(l.Name) {
				return nil
			}
			label := l.Name
			if !model.Blank(l.Level) {
				label += " (" + l.Level + ")"
			}
			return chip(label, basicChip)
		})...))

	projects := section(SectionProjects, basicEntry, heading("PROJECTS"),
		each(r.AdditionalInfo.Projects, func(_ int, pr model.Project) *Node {
			return group(basicEntry,
				text(pr.Title, Style{FontSize: "17px", FontWeight: "500"}),
				text(pr.Date, basicMuted),
				text(pr.Description, Style{}),
				link("View Project", pr.Link, Style{Color: "#1976d2"}),
			)
		})...)

	certifications := section(SectionCertifications, basicEntry, heading("CERTIFICATIONS"),
		each(r.AdditionalInfo.Certifications, func(_ int, c model.Certification) *Node {
			return group(basicEntry,
				text(c.Name, Style{FontWeight: "500"}),
				text(model.Join(" | ", c.Issuer, c.Date), basicMuted),
			)
		})...)

	references := section(SectionReferences, basicEntry, heading("REFERENCES"),
		each(r.AdditionalInfo.References, func(_ int, ref model.Reference) *Node {
			return group(basicEntry,
				text(ref.Name, Style{FontWeight: "500"}),
				text(model.Join(" at ", ref.Position, ref.Company), basicMuted),
				text(ref.Contact, basicMuted),
			)
		})...)

	root := box(Style{Padding: "32px", Color: "#222"},
		header, summary, experience, education,
		group(Style{Display: "flex", Gap: "24px"}, skills, languages),
		projects, certifications, references,
	)
	return newTree(b.ID(), root)
}
