package renderer

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

// renderPDF prints HTML to an A4 PDF with headless Chrome. chromePath may
// be empty, in which case the CHROME_PATH env var and then the default
// browser lookup apply.
func renderPDF(ctx context.Context, html, chromePath string) (pdf []byte, err error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, 60*time.Second)
	defer cancelRun()

	// Chrome needs a file URL; data URLs choke on large documents.
	var tmpDir string
	tmpDir, err = os.MkdirTemp("", "resumesmith-")
	if err != nil {
		err = errors.Wrap(err, "failed to create temp directory")
		return pdf, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	err = os.WriteFile(htmlPath, []byte(html), 0600)
	if err != nil {
		err = errors.Wrap(err, "failed to write temp HTML")
		return pdf, err
	}

	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) (actionErr error) {
			// A4: 210mm x 297mm -> 8.27in x 11.69in
			pdf, _, actionErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return actionErr
		}),
	)
	if err != nil {
		err = errors.Wrap(err, "headless Chrome PDF print failed")
		return pdf, err
	}

	return pdf, err
}
