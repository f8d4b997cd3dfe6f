package repository

import (
	"context"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// JobsRepo records export jobs in Postgres. With a nil pool every call is a
// no-op, so the service runs without a jobs database.
type JobsRepo struct {
	pool *pgxpool.Pool
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

func (r *JobsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO export_jobs (id, resume_id, template_id, format, status, file_name, artifact_key, size_bytes, error, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, file_name = EXCLUDED.file_name, artifact_key = EXCLUDED.artifact_key, size_bytes = EXCLUDED.size_bytes, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at`,
		j.ID, j.ResumeID, j.TemplateID, string(j.Format), j.Status, j.FileName, j.ArtifactKey, j.SizeBytes, j.Error, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return &domain.PersistenceError{Op: "save export job", Cause: err}
	}
	return nil
}

func (r *JobsRepo) Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	if r.pool == nil {
		return nil, domain.ErrNotFound
	}
	var j domain.ExportJob
	var format string
	err := r.pool.QueryRow(ctx, `SELECT id, resume_id, template_id, format, status, file_name, artifact_key, size_bytes, error, created_at, updated_at
		FROM export_jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.ResumeID, &j.TemplateID, &format, &j.Status, &j.FileName, &j.ArtifactKey, &j.SizeBytes, &j.Error, &j.CreatedAt, &j.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("export job %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load export job", Cause: err}
	}
	j.Format = domain.Format(format)
	return &j, nil
}
