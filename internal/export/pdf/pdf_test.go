package pdf

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMount struct {
	settleErr  error
	captureErr error
	block      bool
	img        []byte
	scale      float64
	closed     int
}

func (m *fakeMount) WaitSettled(ctx context.Context) error {
	if m.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return m.settleErr
}

func (m *fakeMount) Capture(_ context.Context, scale float64) ([]byte, error) {
	m.scale = scale
	return m.img, m.captureErr
}

func (m *fakeMount) Close() error {
	m.closed++
	return nil
}

type fakeMounter struct {
	mount *fakeMount
	err   error
	html  string
}

func (f *fakeMounter) Mount(_ context.Context, html string) (Mount, error) {
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return f.mount, nil
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testTree(t *testing.T) *render.Tree {
	t.Helper()
	id := "basic"
	r := &model.Resume{
		PersonalInfo:       &model.PersonalInfo{FullName: "Jane Doe", Email: "jane@x.io"},
		SelectedTemplateID: &id,
	}
	tpl, err := render.DefaultRegistry().Lookup(&id)
	require.NoError(t, err)
	return tpl.Render(r, render.Options{})
}

func TestExport_SinglePage(t *testing.T) {
	m := &fakeMount{img: testPNG(t, 80, 160)}
	mounter := &fakeMounter{mount: m}

	out, err := NewExporter(mounter, time.Second).Export(context.Background(), testTree(t))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "/Count 1")
	assert.Equal(t, CaptureScale, m.scale)
	assert.Equal(t, 1, m.closed)
	assert.Contains(t, mounter.html, "Jane Doe")
}

func TestExport_ReleasesMountOnCaptureError(t *testing.T) {
	m := &fakeMount{captureErr: errors.New("tab crashed")}
	_, err := NewExporter(&fakeMounter{mount: m}, time.Second).Export(context.Background(), testTree(t))

	var ce *domain.CaptureError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, m.closed)
}

func TestExport_SettleTimeout(t *testing.T) {
	m := &fakeMount{block: true}
	_, err := NewExporter(&fakeMounter{mount: m}, 10*time.Millisecond).Export(context.Background(), testTree(t))

	require.ErrorIs(t, err, domain.ErrRenderTimeout)
	assert.Equal(t, 1, m.closed)
}

func TestExport_SettleFailure(t *testing.T) {
	m := &fakeMount{settleErr: errors.New("navigation aborted")}
	_, err := NewExporter(&fakeMounter{mount: m}, time.Second).Export(context.Background(), testTree(t))

	var ce *domain.CaptureError
	require.ErrorAs(t, err, &ce)
	assert.NotErrorIs(t, err, domain.ErrRenderTimeout)
	assert.Equal(t, 1, m.closed)
}

func TestExport_MountError(t *testing.T) {
	_, err := NewExporter(&fakeMounter{err: errors.New("no browser")}, time.Second).Export(context.Background(), testTree(t))

	var ce *domain.CaptureError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "mount page", ce.Message)
}

func TestExport_BadImage(t *testing.T) {
	m := &fakeMount{img: []byte("not a png")}
	_, err := NewExporter(&fakeMounter{mount: m}, time.Second).Export(context.Background(), testTree(t))

	var ce *domain.CaptureError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, m.closed)
}

func TestFit(t *testing.T) {
	// Tall capture: height-bound, centered.
	x, y, w, h := Fit(210, 297, 1000, 2000)
	assert.InDelta(t, 148.5, w, 1e-9)
	assert.InDelta(t, 297, h, 1e-9)
	assert.InDelta(t, 30.75, x, 1e-9)
	assert.Zero(t, y)

	// Wide capture: width-bound, flush left.
	x, _, w, h = Fit(210, 297, 2000, 1000)
	assert.InDelta(t, 210, w, 1e-9)
	assert.InDelta(t, 105, h, 1e-9)
	assert.Zero(t, x)

	// Aspect ratio is preserved.
	_, _, w, h = Fit(210, 297, 1588, 2400)
	assert.InDelta(t, 1588.0/2400.0, w/h, 1e-9)

	x, y, w, h = Fit(210, 297, 0, 10)
	assert.Zero(t, x+y+w+h)
}

func TestPackage_Deterministic(t *testing.T) {
	img := testPNG(t, 40, 60)
	a, err := Package(img)
	require.NoError(t, err)
	b, err := Package(img)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
