package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// MemoryResumeStore is used when no MongoDB URI is configured, and in tests.
type MemoryResumeStore struct {
	mu    sync.RWMutex
	store map[string]model.Resume
	now   func() time.Time
}

func NewMemoryResumeStore() *MemoryResumeStore {
	return &MemoryResumeStore{store: map[string]model.Resume{}, now: time.Now}
}

func (m *MemoryResumeStore) Save(_ context.Context, r *model.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = uuid.NewString()
	r.UpdatedAt = m.now().UTC()
	m.store[r.ID] = *r
	return nil
}

func (m *MemoryResumeStore) Update(_ context.Context, r *model.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[r.ID]; !ok {
		return fmt.Errorf("resume %s: %w", r.ID, domain.ErrNotFound)
	}
	r.UpdatedAt = m.now().UTC()
	m.store[r.ID] = *r
	return nil
}

func (m *MemoryResumeStore) Get(_ context.Context, id string) (*model.Resume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.store[id]
	if !ok {
		return nil, fmt.Errorf("resume %s: %w", id, domain.ErrNotFound)
	}
	return &r, nil
}
