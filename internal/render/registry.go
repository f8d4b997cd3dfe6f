package render

import (
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Options controls how a template renders.
type Options struct {
	// Preview enables labeled placeholders for missing header fields. Export
	// output never contains them.
	Preview bool
}

// Template is one layout strategy.
type Template interface {
	ID() string
	Name() string
	Description() string
	Render(r *model.Resume, opts Options) *Tree
}

type Registry struct {
	order []Template
	byID  map[string]Template
}

func NewRegistry(templates ...Template) *Registry {
	reg := &Registry{byID: map[string]Template{}}
	for _, t := range templates {
		reg.order = append(reg.order, t)
		reg.byID[t.ID()] = t
	}
	return reg
}

// DefaultRegistry holds the four built-in templates.
func DefaultRegistry() *Registry {
	return NewRegistry(Basic{}, Modern{}, Minimal{}, Professional{})
}

// Lookup resolves a selected template id. A nil id means nothing was chosen.
func (reg *Registry) Lookup(id *string) (Template, error) {
	if id == nil || *id == "" {
		return nil, domain.ErrTemplateNotFound
	}
	t, ok := reg.byID[*id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, *id)
	}
	return t, nil
}

func (reg *Registry) List() []Template {
	out := make([]Template, len(reg.order))
	copy(out, reg.order)
	return out
}

func newTree(id string, root *Node) *Tree {
	root.Role = "page"
	root.Style.Width = fmt.Sprintf("%dmm", PageWidthMM)
	root.Style.Background = "#ffffff"
	return &Tree{Template: id, WidthMM: PageWidthMM, Root: root}
}

func placeholder(value, label string, opts Options) string {
	if model.Blank(value) && opts.Preview {
		return label
	}
	return value
}
