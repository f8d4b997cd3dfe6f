package render

import (
	"strings"
)

// PageWidthMM is the fixed page width every template lays out for (A4).
const PageWidthMM = 210

type Kind string

const (
	KindBox   Kind = "box"
	KindText  Kind = "text"
	KindChip  Kind = "chip"
	KindBar   Kind = "bar"
	KindImage Kind = "image"
	KindLink  Kind = "link"
	KindRule  Kind = "rule"
)

// Style is the subset of CSS the templates use. Empty fields are not emitted.
type Style struct {
	Width        string
	Display      string
	Direction    string
	Gap          string
	Background   string
	Color        string
	FontSize     string
	FontWeight   string
	FontStyle    string
	TextAlign    string
	Padding      string
	Margin       string
	BorderBottom string
	BorderRadius string
}

// CSS renders the style as a declaration list in a fixed property order.
func (s Style) CSS() string {
	var b strings.Builder
	decl := func(prop, val string) {
		if val != "" {
			b.WriteString(prop)
			b.WriteByte(':')
			b.WriteString(val)
			b.WriteByte(';')
		}
	}
	decl("width", s.Width)
	decl("display", s.Display)
	decl("flex-direction", s.Direction)
	decl("gap", s.Gap)
	decl("background", s.Background)
	decl("color", s.Color)
	decl("font-size", s.FontSize)
	decl("font-weight", s.FontWeight)
	decl("font-style", s.FontStyle)
	decl("text-align", s.TextAlign)
	decl("padding", s.Padding)
	decl("margin", s.Margin)
	decl("border-bottom", s.BorderBottom)
	decl("border-radius", s.BorderRadius)
	return b.String()
}

// Node is one element of a VisualTree.
type Node struct {
	Kind     Kind
	Role     string
	Text     string
	Href     string
	Src      string
	Fallback string
	Percent  int
	Style    Style
	Children []*Node
}

// Tree is the rendered page of one template.
type Tree struct {
	Template string
	WidthMM  int
	Root     *Node
}

// Walk visits n and its descendants depth first.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node with the given role, or nil.
func (n *Node) Find(role string) *Node {
	var found *Node
	n.Walk(func(x *Node) {
		if found == nil && x.Role == role {
			found = x
		}
	})
	return found
}

// Count returns the number of nodes of kind k under n.
func (n *Node) Count(k Kind) int {
	c := 0
	n.Walk(func(x *Node) {
		if x.Kind == k {
			c++
		}
	})
	return c
}

// Texts returns every visible string under n in document order.
func (n *Node) Texts() []string {
	var out []string
	n.Walk(func(x *Node) {
		if x.Text != "" {
			out = append(out, x.Text)
		}
	})
	return out
}

// Section returns the root node of a named section, or nil when the
// template omitted it.
func (t *Tree) Section(name string) *Node {
	if t == nil || t.Root == nil {
		return nil
	}
	return t.Root.Find(sectionRole(name))
}

// Text joins all visible strings of the tree with newlines.
func (t *Tree) Text() string {
	return strings.Join(t.Root.Texts(), "\n")
}

func sectionRole(name string) string { return "section:" + name }

// Section names shared by every template.
const (
	SectionHeader         = "header"
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionLanguages      = "languages"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionReferences     = "references"
)

func box(st Style, children ...*Node) *Node {
	n := &Node{Kind: KindBox, Style: st}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// group is a box that disappears when none of its children survived.
func group(st Style, children ...*Node) *Node {
	n := box(st, children...)
	if len(n.Children) == 0 {
		return nil
	}
	return n
}

// section returns nil when no child survived, so an empty section never
// reaches the tree.
func section(name string, st Style, heading *Node, children ...*Node) *Node {
	body := box(Style{}, children...)
	if len(body.Children) == 0 {
		return nil
	}
	n := box(st, heading)
	n.Role = sectionRole(name)
	n.Children = append(n.Children, body.Children...)
	return n
}

func text(s string, st Style) *Node {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &Node{Kind: KindText, Text: s, Style: st}
}

func chip(s string, st Style) *Node {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &Node{Kind: KindChip, Text: s, Style: st}
}

func bar(percent int, st Style) *Node {
	return &Node{Kind: KindBar, Percent: percent, Style: st}
}

func link(label, href string, st Style) *Node {
	if strings.TrimSpace(href) == "" {
		return nil
	}
	return &Node{Kind: KindLink, Text: label, Href: href, Style: st}
}

func rule(st Style) *Node {
	return &Node{Kind: KindRule, Style: st}
}

func image(src string, st Style) *Node {
	return &Node{Kind: KindImage, Src: photoSource(src), Fallback: placeholderPhoto, Style: st}
}

// each maps items to nodes, dropping nils.
func each[T any](items []T, fn func(int, T) *Node) []*Node {
	out := make([]*Node, 0, len(items))
	for i, it := range items {
		if n := fn(i, it); n != nil {
			out = append(out, n)
		}
	}
	return out
}
