package render

import (
	"resume-builder/internal/model"
)

// Modern puts a dark header band over a two-column body with a sidebar.
type Modern struct{}

func (Modern) ID() string   { return "modern" }
func (Modern) Name() string { return "Modern" }
func (Modern) Description() string {
	return "Contemporary design with a focus on skills and experience"
}

const modernAccent = "#2c3e50"

var (
	modernHeading = Style{FontSize: "16px", FontWeight: "700", Color: modernAccent, Margin: "0 0 10px 0"}
	modernEntry   = Style{Margin: "0 0 16px 0"}
	modernMuted   = Style{Color: "#777", FontSize: "13px"}
)

func (m Modern) Render(r *model.Resume, opts Options) *Tree {
	p := r.Personal()
	heading := func(s string) *Node { return text(s, modernHeading) }
	white := Style{Color: "#ffffff", FontSize: "13px"}

	header := section(SectionHeader, Style{Background: modernAccent, Color: "#ffffff", Padding: "28px 32px"}, nil,
		text(placeholder(p.FullName, "Full Name", opts), Style{FontSize: "32px", FontWeight: "700"}),
		text(placeholder(p.Title, "Professional Title", opts), Style{FontSize: "18px", FontWeight: "300"}),
		group(Style{Display: "flex", Gap: "18px", Margin: "10px 0 0 0"},
			text(p.Email, white),
			text(p.Phone, white),
			text(p.Location, white),
			text(p.LinkedIn, white),
			text(p.Website, white),
		),
	)

	skills := section(SectionSkills, modernEntry, heading("Skills"),
		group(Style{Display: "flex", Gap: "6px"}, each(r.Skills.Valid(), func(_ int, s model.Skill) *Node {
			return chip(s.Name, Style{Background: modernAccent, Color: "#ffffff", Padding: "2px 10px", BorderRadius: "12px", FontSize: "12px"})
		})...))

	languages := section(SectionLanguages, modernEntry, heading("Languages"),
		each(r.Skills.Languages, func(_ int, l model.Language) *Node {
			if model.Blank(l.Name) {
				return nil
			}
			return box(Style{Margin: "0 0 8px 0"},
				text(model.Join(" - ", l.Name, l.Level), Style{FontSize: "13px"}),
				bar(LevelPercent(l.Level), Style{Background: modernAccent}),
			)
		})...)

	references := section(SectionReferences, modernEntry, heading("References"),
		each(r.AdditionalInfo.References, func(_ int, ref model.Reference) *Node {
			return group(Style{Margin: "0 0 10px 0"},
				text(ref.Name, Style{FontWeight: "700", FontSize: "13px"}),
				text(model.Join(", ", ref.Position, ref.Company), modernMuted),
				text(ref.Contact, modernMuted),
			)
		})...)

	sidebar := box(Style{Width: "35%", Background: "#f5f5f5", Padding: "24px"},
		image(p.PhotoURL, Style{Width: "120px", BorderRadius: "50%", Margin: "0 auto 20px auto"}),
		skills, languages, references,
	)

	summary := section(SectionSummary, modernEntry, heading("Professional Summary"), text(p.Summary, Style{}))

	experience := section(SectionExperience, modernEntry, heading("Work Experience"),
		each(r.Experience, func(_ int, e model.Experience) *Node {
			return group(modernEntry,
				text(e.Title, Style{FontSize: "16px", FontWeight: "700"}),
				text(model.Join(" | ", e.Company, e.Location), Style{Color: modernAccent}),
				text(model.DateRange(e.StartDate, e.EndDate, e.Current), modernMuted),
				text(e.Description, Style{}),
			)
		})...)

	education := section(SectionEducation, modernEntry, heading("Education"),
		each(r.Education, func(_ int, e model.Education) *Node {
			return group(modernEntry,
				text(model.Join(" in ", e.Degree, e.Field), Style{FontSize: "16px", FontWeight: "700"}),
				text(model.Join(" | ", e.Institution, e.Location), Style{Color: modernAccent}),
				text(model.DateRange(e.StartDate, e.EndDate, e.Current), modernMuted),
				text(e.Description, Style{}),
			)
		})...)

	projects := section(SectionProjects, modernEntry, heading("Projects"),
		each(r.AdditionalInfo.Projects, func(_ int, pr model.Project) *Node {
			return group(modernEntry,
				text(pr.Title, Style{FontWeight: "700"}),
				text(pr.Date, modernMuted),
				text(pr.Description, Style{}),
				link(pr.Link, pr.Link, Style{Color: modernAccent, FontSize: "13px"}),
			)
		})...)

	certifications := section(SectionCertifications, modernEntry, heading("Certifications"),
		each(r.AdditionalInfo.Certifications, func(_ int, c model.Certification) *Node {
			return group(Style{Margin: "0 0 10px 0"},
				text(c.Name, Style{FontWeight: "700"}),
				text(model.Join(" | ", c.Issuer, c.Date), modernMuted),
			)
		})...)

	content := box(Style{Width: "65%", Padding: "24px"},
		summary, experience, education, projects, certifications,
	)

	root := box(Style{Color: "#333"},
		header,
		box(Style{Display: "flex"}, sidebar, content),
	)
	return newTree(m.ID(), root)
}
