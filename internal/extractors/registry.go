package extractors

import (
	"context"
	"fmt"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driven"
	"github.com/haven-labs/docchat-cli/internal/logger"
)

// Registry dispatches uploaded files to the extractor for their kind.
type Registry struct {
	byKind map[domain.FileKind]driven.Extractor
}

// NewRegistry builds a dispatcher over the given extractors.
// Later extractors for the same kind replace earlier ones.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	byKind := make(map[domain.FileKind]driven.Extractor, len(extractors))
	for _, e := range extractors {
		byKind[e.Kind()] = e
	}
	return &Registry{byKind: byKind}
}

// Dispatch processes files in upload order and returns one result per file.
// Each file is independent: a failure (or even a panicking extractor) is
// recorded in that file's result and never prevents later files.
func (r *Registry) Dispatch(ctx context.Context, files []domain.UploadedFile) []domain.FileResult {
	results := make([]domain.FileResult, 0, len(files))
	for _, f := range files {
		results = append(results, domain.FileResult{
			File:   f,
			Result: r.dispatchOne(ctx, f),
		})
	}
	return results
}

func (r *Registry) dispatchOne(ctx context.Context, f domain.UploadedFile) (result domain.ExtractionResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result = domain.ExtractionFailure(fmt.Sprintf("extraction panic: %v", rec))
		}
	}()

	kind := f.Kind()
	ext, ok := r.byKind[kind]
	if kind == domain.KindUnsupported || !ok {
		logger.Debug("no extractor for %q", f.Name)
		return domain.UnsupportedFile()
	}

	logger.Debug("extracting %q as %s", f.Name, kind)
	return ext.Extract(ctx, f)
}
