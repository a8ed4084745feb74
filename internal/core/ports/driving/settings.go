package driving

import "github.com/haven-labs/docchat-cli/internal/core/domain"

// SettingsService manages persisted application settings.
type SettingsService interface {
	// Get retrieves current application settings with defaults applied.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetOCR updates and persists OCR parameters after validation.
	SetOCR(params domain.OCRParameters) error

	// SetPDF updates and persists PDF fallback settings after validation.
	SetPDF(settings domain.PDFSettings) error

	// SetLLMProvider configures the LLM provider, filling the default
	// model when none is given.
	SetLLMProvider(provider domain.LLMProvider, model, apiKey string) error
}
