package driven

import (
	"context"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
)

// Extractor produces normalised plain text from one uploaded file.
// Each extractor handles one file kind; batch-scoped configuration (OCR
// parameters, PDF settings) is bound at construction so Extract stays a pure
// function of its inputs plus the read-only engine services.
//
// Extractors report problems through the tagged result, not the error
// return: a failure is localised to the file and must never abort the batch.
type Extractor interface {
	// Kind returns the file kind this extractor handles.
	Kind() domain.FileKind

	// Extract produces the extraction outcome for one file.
	Extract(ctx context.Context, file domain.UploadedFile) domain.ExtractionResult
}
