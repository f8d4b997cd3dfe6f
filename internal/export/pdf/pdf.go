// Package pdf captures a rendered template as an image and places it on a
// single A4 page.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/logger"
	"resume-builder/internal/render"

	"github.com/go-pdf/fpdf"
)

const (
	// CaptureScale oversamples the bitmap for print quality.
	CaptureScale = 2.0
	PageWidthMM  = 210.0
	PageHeightMM = 297.0

	DefaultSettleTimeout = 10 * time.Second
)

// pdfEpoch is written as creation and modification date.
var pdfEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Mount is an off-screen page. Close must be safe to call on every path.
type Mount interface {
	// WaitSettled blocks until images and fonts have loaded and layout is
	// stable, or ctx ends.
	WaitSettled(ctx context.Context) error
	// Capture returns a PNG of the page root at the given device scale.
	Capture(ctx context.Context, scale float64) ([]byte, error)
	Close() error
}

// Mounter creates off-screen mounts. A failed Mount leaves nothing behind.
type Mounter interface {
	Mount(ctx context.Context, html string) (Mount, error)
}

type Exporter struct {
	mounter       Mounter
	settleTimeout time.Duration
}

func NewExporter(m Mounter, settleTimeout time.Duration) *Exporter {
	if settleTimeout <= 0 {
		settleTimeout = DefaultSettleTimeout
	}
	return &Exporter{mounter: m, settleTimeout: settleTimeout}
}

// Export mounts the tree, waits for it to settle, rasterizes it and packages
// the bitmap as a one-page PDF. The mount is released before returning.
func (e *Exporter) Export(ctx context.Context, tree *render.Tree) ([]byte, error) {
	html, err := render.HTML(tree)
	if err != nil {
		return nil, &domain.CaptureError{Message: "serialize page", Cause: err}
	}

	m, err := e.mounter.Mount(ctx, html)
	if err != nil {
		return nil, &domain.CaptureError{Message: "mount page", Cause: err}
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			logger.Warn().Err(cerr).Str("template", tree.Template).Msg("pdf: release mount")
		}
	}()

	settleCtx, cancel := context.WithTimeout(ctx, e.settleTimeout)
	err = m.WaitSettled(settleCtx)
	cancel()
	if err != nil {
		if errors.Is(err, domain.ErrRenderTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", domain.ErrRenderTimeout, e.settleTimeout)
		}
		return nil, &domain.CaptureError{Message: "wait for layout", Cause: err}
	}

	img, err := m.Capture(ctx, CaptureScale)
	if err != nil {
		return nil, &domain.CaptureError{Message: "rasterize page", Cause: err}
	}
	out, err := Package(img)
	if err != nil {
		return nil, &domain.CaptureError{Message: "encode pdf", Cause: err}
	}
	return out, nil
}

// Fit scales an image uniformly into the page and centers it horizontally.
// Content taller than the page shrinks rather than paginating.
func Fit(pageW, pageH, imgW, imgH float64) (x, y, w, h float64) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0, 0, 0
	}
	ratio := min(pageW/imgW, pageH/imgH)
	w, h = imgW*ratio, imgH*ratio
	return (pageW - w) / 2, 0, w, h
}

// Package places a PNG on one portrait A4 page.
func Package(img []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return nil, fmt.Errorf("decode capture: %w", err)
	}
	x, y, w, h := Fit(PageWidthMM, PageHeightMM, float64(cfg.Width), float64(cfg.Height))

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(pdfEpoch)
	doc.SetModificationDate(pdfEpoch)
	doc.SetCatalogSort(true)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("resume", opts, bytes.NewReader(img))
	doc.ImageOptions("resume", x, y, w, h, false, opts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
