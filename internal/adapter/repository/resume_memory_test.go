package repository

import (
	"context"
	"testing"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryResumeStore(t *testing.T) {
	store := NewMemoryResumeStore()
	ctx := context.Background()

	r := &model.Resume{PersonalInfo: &model.PersonalInfo{FullName: "Jane Doe"}}
	require.NoError(t, store.Save(ctx, r))
	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.False(t, r.UpdatedAt.IsZero())

	got, err := store.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Personal().FullName)

	got.PersonalInfo = &model.PersonalInfo{FullName: "Jane Smith"}
	require.NoError(t, store.Update(ctx, got))
	again, err := store.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", again.Personal().FullName)

	_, err = store.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, store.Update(ctx, &model.Resume{ID: "missing"}), domain.ErrNotFound)
}

func TestJobsRepo_NilPoolIsNoop(t *testing.T) {
	repo := NewJobsRepo(nil)
	require.NoError(t, repo.Save(context.Background(), &domain.ExportJob{ID: uuid.New()}))
	_, err := repo.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
