package docx

import (
	"strings"

	"resume-builder/internal/model"
)

const (
	font   = "Calibri"
	accent = "2B579A"
	// lineHeight keeps body text at the same leading in every section.
	lineHeight = 340
)

var (
	entrySpacing  = Spacing{Before: 60, After: 60}
	detailSpacing = Spacing{Before: 0, After: 60}
	bodySpacing   = Spacing{Before: 60, After: 60, Line: lineHeight}
)

// builder accumulates paragraphs in document order.
type builder struct {
	paras []Paragraph
}

func (b *builder) add(p Paragraph) { b.paras = append(b.paras, p) }

func (b *builder) blank(n int) {
	for i := 0; i < n; i++ {
		b.add(Paragraph{Spacing: Spacing{Before: 120, After: 120, Line: 240}})
	}
}

func (b *builder) heading(title string) {
	b.add(Paragraph{
		Runs:    []Run{{Text: title, Bold: true, Size: 28, Color: accent, Font: font}},
		Spacing: Spacing{Before: 1800, After: 180, Line: lineHeight},
	})
}

// runs adds a paragraph unless every run was dropped.
func (b *builder) runs(sp Spacing, rs ...Run) {
	if len(rs) == 0 {
		return
	}
	b.add(Paragraph{Runs: rs, Spacing: sp})
}

func (b *builder) plain(s string, sp Spacing) {
	if model.Blank(s) {
		return
	}
	b.add(Paragraph{Runs: []Run{{Text: s}}, Spacing: sp})
}

// joined builds "left sep right" as runs; the separator only appears when
// both sides are present.
func joined(left Run, sep string, right Run) []Run {
	var rs []Run
	l, r := !model.Blank(left.Text), !model.Blank(right.Text)
	if l {
		rs = append(rs, left)
	}
	if l && r {
		rs = append(rs, Run{Text: sep, Font: font})
	}
	if r {
		rs = append(rs, right)
	}
	return rs
}

func bold(s string) Run   { return Run{Text: s, Bold: true, Font: font} }
func italic(s string) Run { return Run{Text: s, Italic: true, Font: font} }

// dateLocation renders "start - end | location". The date part is only
// emitted when a start or end date exists; current shows "Present".
func dateLocation(start, end string, current bool, location string) []Run {
	date := ""
	if !model.Blank(start) || !model.Blank(end) {
		date = model.DateRange(start, end, current)
	}
	return joined(italic(date), " | ", italic(location))
}

// description renders one plain paragraph for a single sentence and one
// bullet per sentence otherwise.
func (b *builder) description(desc string) {
	lines := SplitSentences(desc)
	switch len(lines) {
	case 0:
		return
	case 1:
		b.plain(desc, bodySpacing)
	default:
		for _, l := range lines {
			b.add(Paragraph{
				Runs:       []Run{{Text: "• " + withPeriod(l), Font: font}},
				Spacing:    Spacing{Before: 30, After: 30, Line: lineHeight},
				IndentLeft: 360,
			})
		}
	}
}

// list renders a repeated section: heading, entries separated by one blank
// paragraph, two blank paragraphs after the section.
func list[T any](b *builder, title string, items []T, entry func(T)) {
	if len(items) == 0 {
		return
	}
	b.heading(title)
	for i, it := range items {
		entry(it)
		if i < len(items)-1 {
			b.blank(1)
		}
	}
	b.blank(2)
}

// Build walks the resume in fixed section order: header, rule, contact,
// summary, experience, education, skills, projects, certifications,
// references.
func Build(r *model.Resume) *Document {
	b := &builder{}
	p := r.Personal()

	if !model.Blank(p.FullName) {
		b.add(Paragraph{
			Runs:    []Run{{Text: p.FullName, Bold: true, Size: 36, Color: accent, Font: font}},
			Spacing: Spacing{After: 120},
			Align:   AlignCenter,
		})
	}
	if !model.Blank(p.Title) {
		b.add(Paragraph{
			Runs:    []Run{{Text: p.Title, Size: 24, Color: accent, Font: font}},
			Spacing: Spacing{After: 240},
			Align:   AlignCenter,
		})
	}
	b.add(Paragraph{
		Border:  &Border{Color: accent, Space: 1, Size: 8},
		Spacing: Spacing{Before: 200, After: 800, Line: lineHeight},
	})

	if p.HasContact() {
		b.heading("CONTACT INFORMATION")
		for _, item := range []struct{ label, value string }{
			{"Email", p.Email},
			{"Phone", p.Phone},
			{"Location", p.Location},
			{"LinkedIn", p.LinkedIn},
			{"Website", p.Website},
		} {
			if model.Blank(item.value) {
				continue
			}
			b.runs(bodySpacing, bold(item.label+": "), Run{Text: item.value, Font: font})
		}
		b.blank(2)
	}

	if !model.Blank(p.Summary) {
		b.heading("PROFESSIONAL SUMMARY")
		b.plain(p.Summary, bodySpacing)
		b.blank(2)
	}

	list(b, "WORK EXPERIENCE", r.Experience, func(e model.Experience) {
		b.runs(entrySpacing, joined(bold(e.Title), " at ", bold(e.Company))...)
		b.runs(detailSpacing, dateLocation(e.StartDate, e.EndDate, e.Current, e.Location)...)
		b.description(e.Description)
	})

	list(b, "EDUCATION", r.Education, func(e model.Education) {
		if !model.Blank(e.Institution) {
			b.runs(entrySpacing, bold(e.Institution))
		}
		b.runs(detailSpacing, joined(italic(e.Degree), " in ", italic(e.Field))...)
		b.runs(detailSpacing, dateLocation(e.StartDate, e.EndDate, e.Current, e.Location)...)
		b.plain(e.Description, bodySpacing)
	})

	skills := r.Skills.Names()
	languages := r.Skills.LanguageNames()
	if len(skills) > 0 || len(languages) > 0 {
		b.heading("SKILLS")
		if len(skills) > 0 {
			after := 0
			if len(languages) > 0 {
				after = 60
			}
			b.runs(Spacing{Before: 60, After: after, Line: lineHeight}, Run{Text: strings.Join(skills, ", "), Font: font})
		}
		if len(languages) > 0 {
			b.runs(bodySpacing, Run{Text: strings.Join(languages, ", "), Font: font})
		}
		b.blank(2)
	}

	list(b, "PROJECTS", r.AdditionalInfo.Projects, func(pr model.Project) {
		if !model.Blank(pr.Title) {
			b.runs(entrySpacing, bold(pr.Title))
		}
		b.plain(pr.Description, bodySpacing)
	})

	list(b, "CERTIFICATIONS", r.AdditionalInfo.Certifications, func(c model.Certification) {
		if !model.Blank(c.Name) {
			b.runs(entrySpacing, bold(c.Name))
		}
		issuer, date := Run{Font: font}, Run{Font: font}
		if !model.Blank(c.Issuer) {
			issuer.Text = "Issued by: " + c.Issuer
		}
		if !model.Blank(c.Date) {
			date.Text = "Date: " + c.Date
		}
		b.runs(Spacing{After: 60, Line: lineHeight}, joined(issuer, " | ", date)...)
	})

	list(b, "REFERENCES", r.AdditionalInfo.References, func(ref model.Reference) {
		if !model.Blank(ref.Name) {
			b.runs(entrySpacing, bold(ref.Name))
		}
		b.runs(detailSpacing, joined(italic(ref.Position), " at ", italic(ref.Company))...)
		if !model.Blank(ref.Contact) {
			b.runs(detailSpacing, bold("Contact: "), Run{Text: ref.Contact, Font: font})
		}
	})

	return &Document{Title: p.FullName, Paragraphs: b.paras}
}
