package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"resume-builder/internal/model"
)

// Resumes is the document store facade used by the builder.
type Resumes struct {
	store ResumeStore
}

func NewResumes(store ResumeStore) *Resumes {
	return &Resumes{store: store}
}

// Decode checks raw against the resume document schema, decodes it and
// enforces the skill cap.
func Decode(raw []byte) (*model.Resume, error) {
	r, err := DecodeDraft(raw)
	if err != nil {
		return nil, err
	}
	if err := r.Skills.CheckLimit(); err != nil {
		return nil, err
	}
	return r, nil
}

// DecodeDraft is Decode without the content limits, for wizard validation
// of work in progress.
func DecodeDraft(raw []byte) (*model.Resume, error) {
	if err := model.ValidateDocument(raw); err != nil {
		return nil, err
	}
	var r model.Resume
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode resume: %w", err)
	}
	return &r, nil
}

func (s *Resumes) Create(ctx context.Context, r *model.Resume) (string, error) {
	if err := r.Skills.CheckLimit(); err != nil {
		return "", err
	}
	if err := s.store.Save(ctx, r); err != nil {
		return "", err
	}
	return r.ID, nil
}

func (s *Resumes) Update(ctx context.Context, id string, r *model.Resume) error {
	if err := r.Skills.CheckLimit(); err != nil {
		return err
	}
	r.ID = id
	return s.store.Update(ctx, r)
}

func (s *Resumes) Get(ctx context.Context, id string) (*model.Resume, error) {
	return s.store.Get(ctx, id)
}

// AddSkill appends one skill to a stored resume, enforcing the skill cap.
func (s *Resumes) AddSkill(ctx context.Context, id, name string) (model.Skill, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Skill{}, err
	}
	sk, err := r.Skills.AddSkill(name)
	if err != nil {
		return model.Skill{}, err
	}
	if err := s.store.Update(ctx, r); err != nil {
		return model.Skill{}, err
	}
	return sk, nil
}

// snapshot deep-copies r so a preview or export never sees later edits.
func snapshot(r *model.Resume) (*model.Resume, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var out model.Resume
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
