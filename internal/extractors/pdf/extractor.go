// Package pdf extracts text from PDF uploads with a two-phase cascade:
// embedded text first, rasterise-and-OCR as the fallback.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	ledongthuc "github.com/ledongthuc/pdf"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driven"
	"github.com/haven-labs/docchat-cli/internal/extractors/image"
	"github.com/haven-labs/docchat-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents.
//
// Phase 1 pulls embedded selectable text page by page; it is fast and exact.
// Phase 2 rasterises pages and runs OCR; it is slow and lossy, so it runs
// only when Phase 1 finds no machine-readable text at all.
type Extractor struct {
	raster   driven.Rasteriser
	images   *image.Extractor
	settings domain.PDFSettings
}

// New creates a PDF extractor bound to batch-scoped settings.
// Rasterised pages are delegated to an image extractor built from the same
// OCR parameters.
func New(engine driven.OCREngine, raster driven.Rasteriser, ocr domain.OCRParameters, settings domain.PDFSettings) *Extractor {
	return &Extractor{
		raster:   raster,
		images:   image.New(engine, ocr),
		settings: settings,
	}
}

// Kind returns the file kind this extractor handles.
func (e *Extractor) Kind() domain.FileKind {
	return domain.KindPDF
}

// Extract runs the cascade.
func (e *Extractor) Extract(ctx context.Context, file domain.UploadedFile) domain.ExtractionResult {
	embedded, err := embeddedText(file.Content)
	if err != nil {
		return domain.ExtractionFailure(fmt.Sprintf("invalid PDF: %v", err))
	}
	if embedded != "" {
		return domain.Extracted(embedded)
	}

	logger.Info("no embedded text in %q, falling back to page OCR", file.Name)
	return e.ocrPages(ctx, file)
}

// embeddedText extracts machine-encoded text, page by page.
// A per-page failure (error or library panic) yields an empty string for
// that page rather than aborting the document: one corrupt page must not
// sink the rest. Non-empty page texts are joined with newlines and trimmed.
func embeddedText(content []byte) (text string, err error) {
	// The PDF library panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()

	reader, err := ledongthuc.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	total := pageCount(reader)
	var pages []string
	for i := 1; i <= total; i++ {
		if t := pageText(reader, i); t != "" {
			pages = append(pages, t)
		}
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// pageCount reads the page count with panic protection.
func pageCount(reader *ledongthuc.Reader) (n int) {
	defer func() { _ = recover() }()
	return reader.NumPage()
}

// pageText reads one page's embedded text with panic protection.
func pageText(reader *ledongthuc.Reader, i int) (text string) {
	defer func() { _ = recover() }()

	page := reader.Page(i)
	if page.V.IsNull() {
		return ""
	}
	t, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(t)
}

// ocrPages is Phase 2: rasterise up to the page cap and OCR each page.
func (e *Extractor) ocrPages(ctx context.Context, file domain.UploadedFile) domain.ExtractionResult {
	if err := e.raster.Available(); err != nil {
		return domain.ExtractionFailure(domain.ErrRasteriserNotFound.Error())
	}

	pages, err := e.raster.Rasterise(ctx, file.Content, domain.RasterDPI, e.settings.MaxPages)
	if err != nil {
		return domain.ExtractionFailure(fmt.Sprintf("cannot rasterize PDF pages: %v", err))
	}

	// Pages beyond the cap are silently skipped; the cap bounds worst-case
	// latency and is not an error condition.
	if len(pages) > e.settings.MaxPages {
		pages = pages[:e.settings.MaxPages]
	}
	logger.Debug("OCR on %d page(s) of %q", len(pages), file.Name)

	blocks := make([]string, 0, len(pages))
	for i, pageImage := range pages {
		n := i + 1
		pageFile := domain.UploadedFile{
			Name:    fmt.Sprintf("%s#page-%d.png", file.Name, n),
			Content: pageImage,
		}

		var body string
		res := e.images.Extract(ctx, pageFile)
		if res.IsSuccess() {
			body = res.Text
		} else {
			// A single page's failure is recorded inline; remaining
			// pages still run. The marker counts as page text.
			body = fmt.Sprintf("[OCR error on page %d: %s]", n, res.Reason)
		}

		blocks = append(blocks, fmt.Sprintf("--- Page %d ---\n%s", n, body))
	}

	return domain.Extracted(strings.TrimSpace(strings.Join(blocks, "\n\n")))
}
