package driven

import (
	"context"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
)

// OCREngine recognises text in a raster image.
//
// The engine is an external capability probed once at startup; extractors
// receive it as a dependency so tests can substitute a stub.
type OCREngine interface {
	// Available reports whether the engine can run on this host.
	// Returns domain.ErrOCREngineNotFound when the binary is absent.
	Available() error

	// Recognise runs OCR on PNG-encoded image bytes with the given
	// parameters and returns the raw recognised text.
	// Returns domain.ErrOCREngineNotFound distinctly from recognition
	// failures so callers can surface the operator-fixable case.
	Recognise(ctx context.Context, image []byte, params domain.OCRParameters) (string, error)
}
