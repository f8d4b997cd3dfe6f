package usecase

import (
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/google/uuid"
)

// PreviewSession is an open preview: a snapshot of the resume with the tree
// shown on screen and the placeholder-free tree used for export.
type PreviewSession struct {
	ID       string
	Resume   *model.Resume
	Preview  *render.Tree
	Export   *render.Tree
	OpenedAt time.Time
}

// Previews holds open preview sessions in memory until they expire.
type Previews struct {
	templates *render.Registry
	ttl       time.Duration
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*PreviewSession
}

func NewPreviews(templates *render.Registry, ttl time.Duration) *Previews {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Previews{templates: templates, ttl: ttl, now: time.Now, sessions: map[string]*PreviewSession{}}
}

// Open renders a snapshot of r. Later edits to r do not reach the session.
func (p *Previews) Open(r *model.Resume) (*PreviewSession, error) {
	tpl, err := p.templates.Lookup(r.SelectedTemplateID)
	if err != nil {
		return nil, err
	}
	if err := r.Skills.CheckLimit(); err != nil {
		return nil, err
	}
	snap, err := snapshot(r)
	if err != nil {
		return nil, err
	}
	s := &PreviewSession{
		ID:       uuid.NewString(),
		Resume:   snap,
		Preview:  tpl.Render(snap, render.Options{Preview: true}),
		Export:   tpl.Render(snap, render.Options{}),
		OpenedAt: p.now(),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.purgeLocked()
	p.sessions[s.ID] = s
	return s, nil
}

func (p *Previews) Get(id string) (*PreviewSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.purgeLocked()
	s, ok := p.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (p *Previews) Close(id string) {
	p.mu.Lock()
	delete(p.sessions, id)
	p.mu.Unlock()
}

func (p *Previews) purgeLocked() {
	cutoff := p.now().Add(-p.ttl)
	for id, s := range p.sessions {
		if s.OpenedAt.Before(cutoff) {
			delete(p.sessions, id)
		}
	}
}
