// Package image extracts text from raster images via OCR.
package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"

	// Decoders for the supported upload formats.
	_ "image/jpeg"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor runs OCR on a single image.
// The image is normalised to an RGB colour model and re-encoded as PNG
// before recognition, since OCR engines vary in accepted input formats.
type Extractor struct {
	engine driven.OCREngine
	params domain.OCRParameters
}

// New creates an image extractor bound to batch-scoped OCR parameters.
func New(engine driven.OCREngine, params domain.OCRParameters) *Extractor {
	return &Extractor{engine: engine, params: params}
}

// Kind returns the file kind this extractor handles.
func (e *Extractor) Kind() domain.FileKind {
	return domain.KindImage
}

// Extract decodes, normalises and recognises the image.
// An all-whitespace recognition result is Success(""): absence of text in an
// image is a valid outcome, not an error.
func (e *Extractor) Extract(ctx context.Context, file domain.UploadedFile) domain.ExtractionResult {
	normalised, err := NormalisePNG(file.Content)
	if err != nil {
		return domain.ExtractionFailure(fmt.Sprintf("cannot open image: %v", err))
	}

	text, err := e.engine.Recognise(ctx, normalised, e.params)
	if err != nil {
		if errors.Is(err, domain.ErrOCREngineNotFound) {
			// Operator-fixable environment issue, reported distinctly.
			return domain.ExtractionFailure(domain.ErrOCREngineNotFound.Error())
		}
		return domain.ExtractionFailure(fmt.Sprintf("OCR error: %v", err))
	}

	return domain.Extracted(strings.TrimSpace(text))
}

// NormalisePNG decodes image bytes and re-encodes them as RGB(A) PNG.
// Shared with the PDF fallback path, which feeds rasterised pages through
// the same normalisation.
func NormalisePNG(content []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
