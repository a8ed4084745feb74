package services

import (
	"context"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driving"
	"github.com/haven-labs/docchat-cli/internal/logger"
)

// Ensure ExtractionService implements the interface.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// Dispatcher routes uploaded files to format extractors.
type Dispatcher interface {
	Dispatch(ctx context.Context, files []domain.UploadedFile) []domain.FileResult
}

// DispatcherFactory builds a dispatcher bound to a settings snapshot.
// A fresh dispatcher per batch means settings changes take effect on the
// next batch without restarting.
type DispatcherFactory func(settings domain.AppSettings) Dispatcher

// ExtractionService runs the ingestion pipeline over uploaded files.
type ExtractionService struct {
	settings driving.SettingsService
	build    DispatcherFactory
}

// NewExtractionService creates an extraction service.
func NewExtractionService(settings driving.SettingsService, build DispatcherFactory) *ExtractionService {
	return &ExtractionService{settings: settings, build: build}
}

// ExtractAll processes files in upload order, one result per file.
// Settings are read once per batch; a settings read failure falls back to
// defaults rather than failing the batch.
func (s *ExtractionService) ExtractAll(ctx context.Context, files []domain.UploadedFile) []domain.FileResult {
	if len(files) == 0 {
		return nil
	}

	current := domain.DefaultAppSettings()
	if loaded, err := s.settings.Get(); err != nil {
		logger.Warn("failed to load settings, using defaults: %v", err)
	} else {
		current = *loaded
	}

	return s.build(current).Dispatch(ctx, files)
}
