// file: internals/features/reports/service/chrome.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// RenderTimeout bounds a single PDF render. A render that exceeds it is
// terminal; the caller gets ErrRenderTimeout and no partial output.
const RenderTimeout = 30 * time.Second

// Renderer turns a rendered HTML page into PDF bytes.
type Renderer interface {
	RenderPDF(ctx context.Context, html []byte) ([]byte, error)
}

/* =========================================================
   ChromePool - bounded set of headless browser instances
   ========================================================= */

// ChromePool keeps a fixed number of warm headless browsers and hands
// them out one render at a time. Each render opens a fresh tab so no
// document state leaks between requests.
type ChromePool struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	browsers    chan context.Context
	cancels     []context.CancelFunc
	size        int
}

// NewChromePool launches n headless browsers. The caller owns the pool
// and must Close it on shutdown.
func NewChromePool(n int) (*ChromePool, error) {
	if n < 1 {
		n = 1
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	p := &ChromePool{
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		browsers:    make(chan context.Context, n),
		size:        n,
	}

	for i := 0; i < n; i++ {
		browserCtx, cancel := chromedp.NewContext(allocCtx)
		// Run with no actions starts the browser now instead of on the
		// first render.
		if err := chromedp.Run(browserCtx); err != nil {
			cancel()
			p.Close()
			return nil, fmt.Errorf("start browser %d: %w", i, err)
		}
		p.cancels = append(p.cancels, cancel)
		p.browsers <- browserCtx
	}

	log.Printf("✅ Renderer pool ready (%d browser(s))", n)
	return p, nil
}

// Close tears down every browser. In-flight renders are cancelled.
func (p *ChromePool) Close() {
	for _, cancel := range p.cancels {
		cancel()
	}
	if p.allocCancel != nil {
		p.allocCancel()
	}
}

// RenderPDF prints the given HTML to an A4 PDF. It blocks until a
// browser is free, then holds it for at most RenderTimeout.
func (p *ChromePool) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	var browserCtx context.Context
	select {
	case browserCtx = <-p.browsers:
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: waiting for renderer: %v", ErrRender, ctx.Err())
	}
	defer func() { p.browsers <- browserCtx }()

	// Fresh tab per render, bounded by the render deadline.
	tabCtx, cancelTab := chromedp.NewContext(browserCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, RenderTimeout)
	defer cancelTimeout()

	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(tabCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: after %s", ErrRenderTimeout, RenderTimeout)
		}
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return pdf, nil
}
