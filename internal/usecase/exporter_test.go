package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func sampleResume() *model.Resume {
	return &model.Resume{
		ID:                 "r1",
		PersonalInfo:       &model.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"},
		Experience:         []model.Experience{{Title: "Engineer", Company: "Acme", StartDate: "01/2020", Current: true}},
		SelectedTemplateID: strp("modern"),
	}
}

type fakePDF struct {
	mu      sync.Mutex
	trees   []*render.Tree
	err     error
	gate    chan struct{}
	started chan struct{}
	active  int32
	peak    int32
}

func (f *fakePDF) Export(ctx context.Context, tree *render.Tree) ([]byte, error) {
	n := atomic.AddInt32(&f.active, 1)
	defer atomic.AddInt32(&f.active, -1)
	for {
		p := atomic.LoadInt32(&f.peak)
		if n <= p || atomic.CompareAndSwapInt32(&f.peak, p, n) {
			break
		}
	}
	f.mu.Lock()
	f.trees = append(f.trees, tree)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

type fakeJobs struct {
	mu       sync.Mutex
	statuses []string
	last     map[uuid.UUID]domain.ExportJob
	err      error
}

func (f *fakeJobs) Save(_ context.Context, j *domain.ExportJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, j.Status)
	if f.last == nil {
		f.last = map[uuid.UUID]domain.ExportJob{}
	}
	f.last[j.ID] = *j
	return f.err
}

func (f *fakeJobs) Get(_ context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.last[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &j, nil
}

type fakeArtifacts struct {
	keys []string
}

func (f *fakeArtifacts) Put(_ context.Context, key string, _ []byte, _ string) error {
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeArtifacts) URL(_ context.Context, key, _ string) (string, error) {
	return "https://files.example.com/" + key, nil
}

func TestExport_RefusesBeforeMount(t *testing.T) {
	pdf := &fakePDF{}
	ex := NewExporter(render.DefaultRegistry(), pdf, nil)

	noTemplate := sampleResume()
	noTemplate.SelectedTemplateID = nil
	_, err := ex.Export(context.Background(), noTemplate, domain.FormatPDF)
	require.ErrorIs(t, err, domain.ErrTemplateNotFound)

	unknown := sampleResume()
	unknown.SelectedTemplateID = strp("fancy")
	_, err = ex.Export(context.Background(), unknown, domain.FormatPDF)
	require.ErrorIs(t, err, domain.ErrTemplateNotFound)

	tooMany := sampleResume()
	for i := 0; i <= model.MaxSkills; i++ {
		tooMany.Skills.Skills = append(tooMany.Skills.Skills, model.Skill{Name: fmt.Sprintf("s%d", i)})
	}
	_, err = ex.Export(context.Background(), tooMany, domain.FormatDOCX)
	require.ErrorIs(t, err, model.ErrSkillLimit)
	_, err = ex.Export(context.Background(), tooMany, domain.FormatPDF)
	require.ErrorIs(t, err, model.ErrSkillLimit)

	noPersonal := sampleResume()
	noPersonal.PersonalInfo = nil
	_, err = ex.Export(context.Background(), noPersonal, domain.FormatDOCX)
	require.ErrorIs(t, err, domain.ErrNoPersonalInfo)

	assert.Empty(t, pdf.trees)
}

// countingTemplate wraps a real template and counts Render calls.
type countingTemplate struct {
	render.Template
	renders int
}

func (c *countingTemplate) Render(r *model.Resume, opts render.Options) *render.Tree {
	c.renders++
	return c.Template.Render(r, opts)
}

func TestExport_DOCXSkipsRenderer(t *testing.T) {
	tpl := &countingTemplate{Template: render.Modern{}}
	jobs := &fakeJobs{}
	ex := NewExporter(render.NewRegistry(tpl), &fakePDF{}, jobs)

	res, err := ex.Export(context.Background(), sampleResume(), domain.FormatDOCX)
	require.NoError(t, err)
	assert.Zero(t, tpl.renders)
	assert.Equal(t, "modern", jobs.last[res.JobID].TemplateID)

	_, err = ex.Export(context.Background(), sampleResume(), domain.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, 1, tpl.renders)
}

func TestExport_DOCX(t *testing.T) {
	jobs := &fakeJobs{}
	pdf := &fakePDF{}
	ex := NewExporter(render.DefaultRegistry(), pdf, jobs)

	res, err := ex.Export(context.Background(), sampleResume(), domain.FormatDOCX)
	require.NoError(t, err)
	assert.Equal(t, "Jane_Doe.docx", res.FileName)
	assert.Equal(t, domain.FormatDOCX.ContentType(), res.ContentType)
	assert.Equal(t, "PK", string(res.Data[:2]))
	assert.Empty(t, pdf.trees, "docx never mounts")
	assert.Equal(t, []string{domain.StatusPending, domain.StatusSucceeded}, jobs.statuses)
}

func TestExport_PDFWithArtifacts(t *testing.T) {
	pdf := &fakePDF{}
	arts := &fakeArtifacts{}
	ex := NewExporter(render.DefaultRegistry(), pdf, &fakeJobs{}, WithArtifacts(arts))

	res, err := ex.Export(context.Background(), sampleResume(), domain.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "Jane_Doe.pdf", res.FileName)
	require.Len(t, pdf.trees, 1)
	assert.Equal(t, "modern", pdf.trees[0].Template)
	require.Len(t, arts.keys, 1)
	assert.Equal(t, res.JobID.String()+"/Jane_Doe.pdf", arts.keys[0])
	assert.Equal(t, "https://files.example.com/"+arts.keys[0], res.URL)
}

func TestExporter_Job(t *testing.T) {
	arts := &fakeArtifacts{}
	ex := NewExporter(render.DefaultRegistry(), &fakePDF{}, &fakeJobs{}, WithArtifacts(arts))

	res, err := ex.Export(context.Background(), sampleResume(), domain.FormatPDF)
	require.NoError(t, err)

	st, err := ex.Job(context.Background(), res.JobID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSucceeded, st.Status)
	assert.Equal(t, "Jane_Doe.pdf", st.FileName)
	assert.Equal(t, res.URL, st.URL)

	_, err = ex.Job(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = ex.Job(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExport_FailureRecorded(t *testing.T) {
	jobs := &fakeJobs{}
	pdf := &fakePDF{err: &domain.CaptureError{Message: "rasterize page", Cause: errors.New("tainted")}}
	ex := NewExporter(render.DefaultRegistry(), pdf, jobs)

	_, err := ex.Export(context.Background(), sampleResume(), domain.FormatPDF)
	var ce *domain.CaptureError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{domain.StatusPending, domain.StatusFailed}, jobs.statuses)
	assert.Equal(t, "capture_failed", outcome(err))
}

func TestExport_JobsErrorIsNotFatal(t *testing.T) {
	jobs := &fakeJobs{err: &domain.PersistenceError{Op: "save export job", Cause: errors.New("down")}}
	ex := NewExporter(render.DefaultRegistry(), &fakePDF{}, jobs)

	_, err := ex.Export(context.Background(), sampleResume(), domain.FormatPDF)
	require.NoError(t, err)
}

func TestExport_RejectWhenBusy(t *testing.T) {
	pdf := &fakePDF{gate: make(chan struct{}), started: make(chan struct{}, 1)}
	ex := NewExporter(render.DefaultRegistry(), pdf, nil, WithBusyPolicy(BusyReject))

	done := make(chan error, 1)
	go func() {
		_, err := ex.Export(context.Background(), sampleResume(), domain.FormatPDF)
		done <- err
	}()
	<-pdf.started

	_, err := ex.Export(context.Background(), sampleResume(), domain.FormatPDF)
	require.ErrorIs(t, err, domain.ErrBusy)

	// DOCX does not need the mount.
	_, err = ex.Export(context.Background(), sampleResume(), domain.FormatDOCX)
	require.NoError(t, err)

	close(pdf.gate)
	require.NoError(t, <-done)
}

func TestExport_QueueSerializesMount(t *testing.T) {
	pdf := &fakePDF{}
	ex := NewExporter(render.DefaultRegistry(), pdf, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ex.Export(context.Background(), sampleResume(), domain.FormatPDF)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Len(t, pdf.trees, 5)
	assert.Equal(t, int32(1), atomic.LoadInt32(&pdf.peak))
}

func TestExport_QueueHonorsContext(t *testing.T) {
	pdf := &fakePDF{gate: make(chan struct{}), started: make(chan struct{}, 1)}
	ex := NewExporter(render.DefaultRegistry(), pdf, nil)

	go func() { _, _ = ex.Export(context.Background(), sampleResume(), domain.FormatPDF) }()
	<-pdf.started
	defer close(pdf.gate)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := ex.Export(ctx, sampleResume(), domain.FormatPDF)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExportPreview_ReusesRenderedTree(t *testing.T) {
	pdf := &fakePDF{}
	ex := NewExporter(render.DefaultRegistry(), pdf, nil)
	previews := NewPreviews(render.DefaultRegistry(), time.Minute)

	r := sampleResume()
	r.PersonalInfo.Title = ""
	s, err := previews.Open(r)
	require.NoError(t, err)

	// Edits after opening do not leak into the session.
	r.PersonalInfo.FullName = "Someone Else"

	got, err := previews.Get(s.ID)
	require.NoError(t, err)
	res, err := ex.ExportPreview(context.Background(), got, domain.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "Jane_Doe.pdf", res.FileName)

	require.Len(t, pdf.trees, 1)
	assert.Same(t, s.Export, pdf.trees[0])
	assert.Contains(t, s.Preview.Text(), "Professional Title")
	assert.NotContains(t, pdf.trees[0].Text(), "Professional Title")
}

func TestPreviews_Expire(t *testing.T) {
	previews := NewPreviews(render.DefaultRegistry(), time.Minute)
	now := time.Now()
	previews.now = func() time.Time { return now }

	s, err := previews.Open(sampleResume())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = previews.Get(s.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = previews.Open(&model.Resume{})
	require.ErrorIs(t, err, domain.ErrTemplateNotFound)

	over := sampleResume()
	for i := 0; i <= model.MaxSkills; i++ {
		over.Skills.Skills = append(over.Skills.Skills, model.Skill{Name: fmt.Sprintf("s%d", i)})
	}
	_, err = previews.Open(over)
	require.ErrorIs(t, err, model.ErrSkillLimit)
}
