package migration

import (
	"context"

	"resume-builder/internal/logger"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration is one idempotent schema step.
type Migration struct {
	Name string
	SQL  string
}

var migrations = []Migration{
	{
		Name: "create_export_jobs",
		SQL: `
		CREATE TABLE IF NOT EXISTS export_jobs (
			id UUID PRIMARY KEY,
			resume_id TEXT NOT NULL DEFAULT '',
			template_id TEXT NOT NULL,
			format TEXT NOT NULL,
			status TEXT NOT NULL,
			file_name TEXT NOT NULL DEFAULT '',
			artifact_key TEXT NOT NULL DEFAULT '',
			size_bytes INTEGER NOT NULL DEFAULT 0,
			error TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
	},
	{
		Name: "index_export_jobs_resume",
		SQL:  `CREATE INDEX IF NOT EXISTS export_jobs_resume_idx ON export_jobs (resume_id, created_at DESC);`,
	},
}

// RunMigrations applies every step in order. A nil pool means there is no
// jobs database and nothing to do.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return nil
	}
	logger.Info().Int("count", len(migrations)).Msg("starting database migrations")
	for _, m := range migrations {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			logger.Error().Err(err).Str("name", m.Name).Msg("migration failed")
			return err
		}
		logger.Debug().Str("name", m.Name).Msg("migration completed")
	}
	logger.Info().Msg("all migrations completed")
	return nil
}
