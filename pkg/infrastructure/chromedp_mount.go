package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/export/pdf"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// settledJS is true once the document, its images and its fonts have loaded.
const settledJS = `document.readyState === 'complete' &&
	Array.from(document.images).every(function (i) { return i.complete; }) &&
	(!document.fonts || document.fonts.status === 'loaded')`

const rootRectJS = `(function () {
	var r = document.getElementById('resume-root').getBoundingClientRect();
	return {x: r.left + window.scrollX, y: r.top + window.scrollY, width: r.width, height: r.height};
})()`

// ChromedpMounter mounts pages in a fresh headless Chrome per export.
type ChromedpMounter struct {
	execPath     string
	startTimeout time.Duration
}

func NewChromedpMounter(execPath string) *ChromedpMounter {
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	return &ChromedpMounter{execPath: execPath, startTimeout: 60 * time.Second}
}

func (c *ChromedpMounter) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1024, 1448),
	)
	if c.execPath != "" {
		opts = append(opts, chromedp.ExecPath(c.execPath))
	}
	return opts
}

// Mount writes html to a private temp dir and loads it in a new browser.
// On error everything acquired so far is released.
func (c *ChromedpMounter) Mount(ctx context.Context, html string) (pdf.Mount, error) {
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, err
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.WithoutCancel(ctx), c.allocatorOptions()...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	m := &chromedpMount{tab: tabCtx, dir: tmpDir, cancel: func() {
		cancelTab()
		cancelAlloc()
	}}

	startCtx, cancel := context.WithTimeout(ctx, c.startTimeout)
	defer cancel()
	err = m.run(startCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("#resume-root", chromedp.ByQuery),
	)
	if err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("load page: %w", err)
	}
	return m, nil
}

type chromedpMount struct {
	tab    context.Context
	dir    string
	cancel func()
	once   sync.Once
	err    error
}

// run executes actions in the mount's tab, abandoning them when ctx ends.
func (m *chromedpMount) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(m.tab)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	err := chromedp.Run(runCtx, actions...)
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (m *chromedpMount) WaitSettled(ctx context.Context) error {
	opts := []chromedp.PollOption{chromedp.WithPollingInterval(50 * time.Millisecond)}
	if deadline, ok := ctx.Deadline(); ok {
		opts = append(opts, chromedp.WithPollingTimeout(time.Until(deadline)))
	}
	var ready bool
	err := m.run(ctx, chromedp.Poll(settledJS, &ready, opts...))
	if errors.Is(err, chromedp.ErrPollingTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrRenderTimeout
	}
	return err
}

type rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Capture screenshots the page root at scale times device resolution,
// including content below the fold.
func (m *chromedpMount) Capture(ctx context.Context, scale float64) ([]byte, error) {
	var r rect
	var img []byte
	err := m.run(ctx,
		chromedp.Evaluate(rootRectJS, &r),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if r.Width <= 0 || r.Height <= 0 {
				return errors.New("page root has no size")
			}
			var err error
			img, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				WithClip(&page.Viewport{
					X:      r.X,
					Y:      r.Y,
					Width:  math.Ceil(r.Width),
					Height: math.Ceil(r.Height),
					Scale:  scale,
				}).
				Do(ctx)
			return err
		}),
	)
	return img, err
}

// Close shuts the browser and removes the temp dir. Later calls are no-ops.
func (m *chromedpMount) Close() error {
	m.once.Do(func() {
		m.cancel()
		m.err = os.RemoveAll(m.dir)
	})
	return m.err
}
