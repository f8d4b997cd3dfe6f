package main

import (
	"context"
	"fmt"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/export/pdf"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/logger"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
)

type services struct {
	handler *httpadapter.Handler
	closers []func()
}

func (s *services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// wire connects every configured backend. Optional backends that are not
// configured are left out; required ones fail startup.
func wire(ctx context.Context, cfg *config.Config) (*services, error) {
	svc := &services{}

	jobsPool, err := infra.NewJobsPool(ctx, cfg.Jobs.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("jobs DB not available; export jobs will not be recorded")
		jobsPool = nil
	}
	if jobsPool != nil {
		svc.closers = append(svc.closers, jobsPool.Close)
		if err := migration.RunMigrations(ctx, jobsPool); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}
	jobsRepo := repository.NewJobsRepo(jobsPool)

	var store usecase.ResumeStore = repository.NewMemoryResumeStore()
	if cfg.Mongo.URI != "" {
		client, err := infra.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Timeout)
		if err != nil {
			return nil, err
		}
		svc.closers = append(svc.closers, func() { _ = client.Disconnect(context.Background()) })
		ms, err := repository.NewMongoResumeStore(ctx, client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
		if err != nil {
			return nil, err
		}
		store = ms
	} else {
		logger.Warn().Msg("MONGODB_URI not set; resumes are kept in memory")
	}

	var drafts usecase.DraftStore
	if cfg.Redis.Addr != "" {
		rdb, err := infra.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		svc.closers = append(svc.closers, func() { _ = rdb.Close() })
		drafts = repository.NewRedisDraftStore(rdb, cfg.Redis.KeyPrefix, cfg.Redis.DraftTTL)
	}

	templates := render.DefaultRegistry()
	pdfExporter := pdf.NewExporter(infra.NewChromedpMounter(cfg.Export.ChromePath), cfg.Export.SettleTimeout)
	opts := []usecase.ExporterOption{usecase.WithBusyPolicy(cfg.Export.BusyPolicy)}
	if cfg.MinIO.Endpoint != "" {
		mc, err := infra.ConnectMinIO(ctx, infra.MinIOConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Bucket:    cfg.MinIO.Bucket,
			UseSSL:    cfg.MinIO.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, usecase.WithArtifacts(repository.NewMinIOArtifacts(mc, cfg.MinIO.Bucket, cfg.MinIO.PresignTTL)))
	}

	var gen ai.Generator
	switch cfg.AI.Provider {
	case "gemini":
		g, err := ai.NewGeminiClient(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		if err != nil {
			return nil, err
		}
		svc.closers = append(svc.closers, func() { _ = g.Close() })
		gen = g
	case "http":
		gen = ai.NewClient(cfg.AI.BaseURL)
	default:
		logger.Warn().Msg("AI_PROVIDER not set; writing assistant answers with fallback text")
	}

	svc.handler = httpadapter.NewHandler(httpadapter.Deps{
		Templates: templates,
		Resumes:   usecase.NewResumes(store),
		Exporter:  usecase.NewExporter(templates, pdfExporter, jobsRepo, opts...),
		Previews:  usecase.NewPreviews(templates, cfg.Export.PreviewTTL),
		Drafts:    drafts,
		Assistant: ai.NewAssistant(gen),
		AIRate:    cfg.AI.RateLimit,
		AIBurst:   cfg.AI.Burst,
	})
	return svc, nil
}
