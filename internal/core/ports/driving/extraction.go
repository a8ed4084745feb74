package driving

import (
	"context"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
)

// ExtractionService runs the ingestion pipeline without a chat turn.
// Used by the extract command and by the chat service internally.
type ExtractionService interface {
	// ExtractAll processes files in upload order, each file independent:
	// one file's failure never prevents processing of subsequent files.
	ExtractAll(ctx context.Context, files []domain.UploadedFile) []domain.FileResult
}
