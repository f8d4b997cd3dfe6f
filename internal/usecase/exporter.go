package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/export"
	"resume-builder/internal/export/docx"
	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/pkg/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// What a PDF export does when the mount is already held.
const (
	BusyQueue  = "queue"
	BusyReject = "reject"
)

type ExportResult struct {
	JobID       uuid.UUID
	FileName    string
	ContentType string
	Data        []byte
	// URL is a presigned download link, set when artifact storage is on.
	URL string
}

// Exporter is the single entry point for PDF and DOCX exports. At most one
// PDF export holds the off-screen mount at a time.
type Exporter struct {
	templates *render.Registry
	pdf       PDFRenderer
	jobs      JobsRepo
	artifacts ArtifactStore
	slot      *semaphore.Weighted
	policy    string
	now       func() time.Time
}

type ExporterOption func(*Exporter)

func WithArtifacts(a ArtifactStore) ExporterOption {
	return func(e *Exporter) { e.artifacts = a }
}

func WithBusyPolicy(p string) ExporterOption {
	return func(e *Exporter) {
		if p == BusyReject {
			e.policy = BusyReject
		}
	}
}

func NewExporter(templates *render.Registry, pdf PDFRenderer, jobs JobsRepo, opts ...ExporterOption) *Exporter {
	e := &Exporter{
		templates: templates,
		pdf:       pdf,
		jobs:      jobs,
		slot:      semaphore.NewWeighted(1),
		policy:    BusyQueue,
		now:       time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Export renders r with its selected template and exports it. Used from the
// saved-resumes list, where nothing is mounted yet.
func (e *Exporter) Export(ctx context.Context, r *model.Resume, f domain.Format) (*ExportResult, error) {
	tpl, err := e.check(r)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues(string(f), outcome(err)).Inc()
		return nil, err
	}
	var tree *render.Tree
	if f == domain.FormatPDF {
		tree = tpl.Render(r, render.Options{})
	}
	return e.run(ctx, r, tpl.ID(), tree, f)
}

// ExportPreview exports the tree an open preview already rendered.
func (e *Exporter) ExportPreview(ctx context.Context, s *PreviewSession, f domain.Format) (*ExportResult, error) {
	tpl, err := e.check(s.Resume)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues(string(f), outcome(err)).Inc()
		return nil, err
	}
	return e.run(ctx, s.Resume, tpl.ID(), s.Export, f)
}

// check refuses exports that cannot produce a document, before any mount.
func (e *Exporter) check(r *model.Resume) (render.Template, error) {
	tpl, err := e.templates.Lookup(r.SelectedTemplateID)
	if err != nil {
		return nil, err
	}
	if r.PersonalInfo == nil {
		return nil, domain.ErrNoPersonalInfo
	}
	if err := r.Skills.CheckLimit(); err != nil {
		return nil, err
	}
	return tpl, nil
}

// run records and produces one export. tree is only read for PDF.
func (e *Exporter) run(ctx context.Context, r *model.Resume, templateID string, tree *render.Tree, f domain.Format) (*ExportResult, error) {
	start := e.now()
	job := &domain.ExportJob{
		ID:         uuid.New(),
		ResumeID:   r.ID,
		TemplateID: templateID,
		Format:     f,
		Status:     domain.StatusPending,
		FileName:   export.FileName(r, f),
		CreatedAt:  start,
		UpdatedAt:  start,
	}
	log := logger.Ctx(ctx).With().Str("job", job.ID.String()).Str("format", string(f)).Str("template", templateID).Logger()
	e.saveJob(ctx, job)

	data, err := e.produce(ctx, r, tree, f)
	metrics.ExportDuration.WithLabelValues(string(f)).Observe(time.Since(start).Seconds())
	if err != nil {
		job.Status = domain.StatusFailed
		job.Error = err.Error()
		job.UpdatedAt = e.now()
		e.saveJob(ctx, job)
		metrics.ExportsTotal.WithLabelValues(string(f), outcome(err)).Inc()
		log.Error().Err(err).Msg("export failed")
		return nil, err
	}

	res := &ExportResult{JobID: job.ID, FileName: job.FileName, ContentType: f.ContentType(), Data: data}
	if e.artifacts != nil {
		key := job.ID.String() + "/" + job.FileName
		if err := e.artifacts.Put(ctx, key, data, res.ContentType); err != nil {
			log.Warn().Err(err).Msg("artifact upload failed; returning bytes only")
		} else {
			job.ArtifactKey = key
			if u, err := e.artifacts.URL(ctx, key, job.FileName); err == nil {
				res.URL = u
			} else {
				log.Warn().Err(err).Msg("presign failed")
			}
		}
	}

	job.Status = domain.StatusSucceeded
	job.SizeBytes = len(data)
	job.UpdatedAt = e.now()
	e.saveJob(ctx, job)
	metrics.ExportsTotal.WithLabelValues(string(f), "ok").Inc()
	log.Info().Int("bytes", len(data)).Dur("took", time.Since(start)).Msg("export finished")
	return res, nil
}

func (e *Exporter) produce(ctx context.Context, r *model.Resume, tree *render.Tree, f domain.Format) ([]byte, error) {
	if f == domain.FormatDOCX {
		return docx.Export(r)
	}
	if err := e.acquire(ctx); err != nil {
		return nil, err
	}
	defer e.slot.Release(1)
	metrics.MountsActive.Inc()
	defer metrics.MountsActive.Dec()
	return e.pdf.Export(ctx, tree)
}

func (e *Exporter) acquire(ctx context.Context) error {
	if e.policy == BusyReject {
		if !e.slot.TryAcquire(1) {
			return domain.ErrBusy
		}
		return nil
	}
	return e.slot.Acquire(ctx, 1)
}

// JobStatus is a stored export job plus a fresh download link when the
// artifact was kept.
type JobStatus struct {
	*domain.ExportJob
	URL string `json:"url,omitempty"`
}

// Job looks up a recorded export job. Unparsable ids are not found.
func (e *Exporter) Job(ctx context.Context, id string) (*JobStatus, error) {
	jid, err := uuid.Parse(id)
	if err != nil || e.jobs == nil {
		return nil, fmt.Errorf("export job %s: %w", id, domain.ErrNotFound)
	}
	j, err := e.jobs.Get(ctx, jid)
	if err != nil {
		return nil, err
	}
	st := &JobStatus{ExportJob: j}
	if e.artifacts != nil && j.ArtifactKey != "" {
		if u, err := e.artifacts.URL(ctx, j.ArtifactKey, j.FileName); err == nil {
			st.URL = u
		}
	}
	return st, nil
}

// saveJob is best effort; a missing jobs database never fails an export.
func (e *Exporter) saveJob(ctx context.Context, j *domain.ExportJob) {
	if e.jobs == nil {
		return
	}
	if err := e.jobs.Save(ctx, j); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("job", j.ID.String()).Msg("unable to save export job")
	}
}

func outcome(err error) string {
	var capErr *domain.CaptureError
	switch {
	case errors.Is(err, domain.ErrTemplateNotFound):
		return "template_not_found"
	case errors.Is(err, domain.ErrNoPersonalInfo):
		return "no_personal_info"
	case errors.Is(err, model.ErrSkillLimit):
		return "skill_limit"
	case errors.Is(err, domain.ErrBusy):
		return "busy"
	case errors.Is(err, domain.ErrRenderTimeout):
		return "timeout"
	case errors.As(err, &capErr):
		return "capture_failed"
	}
	return "error"
}
