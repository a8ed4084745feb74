// Package plaintext extracts text from .txt uploads.
package plaintext

import (
	"context"
	"strings"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor decodes raw bytes as UTF-8.
//
// Decoding is lossy: invalid sequences are replaced rather than failing,
// since the source encoding is unknown and unverifiable. Returning something
// beats strict correctness here, so this extractor never produces a failure.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Kind returns the file kind this extractor handles.
func (e *Extractor) Kind() domain.FileKind {
	return domain.KindPlainText
}

// Extract decodes the file content, substituting undecodable sequences.
func (e *Extractor) Extract(_ context.Context, file domain.UploadedFile) domain.ExtractionResult {
	return domain.Extracted(strings.ToValidUTF8(string(file.Content), "�"))
}
