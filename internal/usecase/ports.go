package usecase

import (
	"context"
	"encoding/json"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/google/uuid"
)

// PDFRenderer turns a rendered tree into PDF bytes. It owns the off-screen
// mount for the duration of one call.
type PDFRenderer interface {
	Export(ctx context.Context, tree *render.Tree) ([]byte, error)
}

type JobsRepo interface {
	Save(ctx context.Context, j *domain.ExportJob) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error)
}

// ArtifactStore keeps finished exports for later download.
type ArtifactStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	URL(ctx context.Context, key, fileName string) (string, error)
}

type ResumeStore interface {
	Save(ctx context.Context, r *model.Resume) error
	Update(ctx context.Context, r *model.Resume) error
	Get(ctx context.Context, id string) (*model.Resume, error)
}

// DraftStore is the key-value snapshot store used for draft recovery.
type DraftStore interface {
	Set(ctx context.Context, owner, key string, value json.RawMessage) error
	Get(ctx context.Context, owner, key string) (json.RawMessage, error)
}
