package domain

import "fmt"

const unknownDescription = "Unknown"

// OCR parameter defaults matching tesseract's own defaults.
const (
	// DefaultOCRLanguage is the default recognition language tag.
	DefaultOCRLanguage = "eng"

	// DefaultPageSegMode is the default page segmentation mode.
	DefaultPageSegMode = 3

	// DefaultEngineMode is the default recognition engine mode.
	DefaultEngineMode = 3
)

// OCRParameters configures image recognition.
// Supplied once per dispatch batch and shared read-only across all image and
// PDF extractions in that batch.
type OCRParameters struct {
	// Language is the tesseract language tag (e.g. "eng" or "eng+hin").
	Language string

	// PageSegMode controls how the image is partitioned into text regions.
	PageSegMode int

	// EngineMode selects the recognition algorithm variant.
	EngineMode int
}

// DefaultOCRParameters returns parameters with tesseract defaults.
func DefaultOCRParameters() OCRParameters {
	return OCRParameters{
		Language:    DefaultOCRLanguage,
		PageSegMode: DefaultPageSegMode,
		EngineMode:  DefaultEngineMode,
	}
}

// ValidPageSegModes returns the page segmentation modes the tool exposes.
func ValidPageSegModes() []int {
	return []int{3, 6, 7, 11}
}

// ValidEngineModes returns the engine modes the tool exposes.
func ValidEngineModes() []int {
	return []int{0, 1, 2, 3}
}

// Validate checks the parameters against the exposed value sets.
func (p OCRParameters) Validate() error {
	if p.Language == "" {
		return fmt.Errorf("%w: OCR language must not be empty", ErrInvalidInput)
	}
	if !containsInt(ValidPageSegModes(), p.PageSegMode) {
		return fmt.Errorf("%w: page segmentation mode %d not in %v",
			ErrInvalidInput, p.PageSegMode, ValidPageSegModes())
	}
	if !containsInt(ValidEngineModes(), p.EngineMode) {
		return fmt.Errorf("%w: engine mode %d not in %v",
			ErrInvalidInput, p.EngineMode, ValidEngineModes())
	}
	return nil
}

// PDF OCR bounds.
const (
	// DefaultMaxPDFPages caps OCR cost on scanned PDFs.
	DefaultMaxPDFPages = 10

	// MinPDFPages is the smallest allowed page cap.
	MinPDFPages = 1

	// MaxPDFPages is the largest allowed page cap.
	MaxPDFPages = 100

	// RasterDPI is the fixed resolution used when rasterising PDF pages.
	RasterDPI = 200
)

// PDFSettings configures the scanned-PDF fallback path.
// Immutable per dispatch batch.
type PDFSettings struct {
	// PopplerPath is an optional filesystem hint for locating the poppler
	// binaries on platforms where they are not on PATH (typically Windows).
	// Empty means use the default lookup.
	PopplerPath string

	// MaxPages caps how many pages are rasterised and OCRed. Pages beyond
	// the cap are silently skipped; this bounds worst-case latency, it is
	// not an error condition.
	MaxPages int
}

// DefaultPDFSettings returns settings with the default page cap.
func DefaultPDFSettings() PDFSettings {
	return PDFSettings{MaxPages: DefaultMaxPDFPages}
}

// Validate checks the page cap bounds.
func (s PDFSettings) Validate() error {
	if s.MaxPages < MinPDFPages || s.MaxPages > MaxPDFPages {
		return fmt.Errorf("%w: max pages %d out of range [%d,%d]",
			ErrInvalidInput, s.MaxPages, MinPDFPages, MaxPDFPages)
	}
	return nil
}

// LLMProvider identifies a text-completion provider.
type LLMProvider string

// Available LLM providers.
const (
	// ProviderGemini is the Google Gemini cloud API.
	ProviderGemini LLMProvider = "gemini"

	// ProviderOllama is a local Ollama instance.
	ProviderOllama LLMProvider = "ollama"
)

// IsValid returns true if the provider is recognised.
func (p LLMProvider) IsValid() bool {
	switch p {
	case ProviderGemini, ProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p LLMProvider) RequiresAPIKey() bool {
	return p == ProviderGemini
}

// IsLocal returns true if this provider runs locally.
func (p LLMProvider) IsLocal() bool {
	return p == ProviderOllama
}

// String returns the string representation.
func (p LLMProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p LLMProvider) Description() string {
	switch p {
	case ProviderGemini:
		return "Gemini (cloud)"
	case ProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// AllLLMProviders returns the providers the settings surface offers.
func AllLLMProviders() []LLMProvider {
	return []LLMProvider{ProviderGemini, ProviderOllama}
}

// DefaultLLMModels returns default models for each provider.
func DefaultLLMModels() map[LLMProvider]string {
	return map[LLMProvider]string{
		ProviderGemini: "gemini-2.5-flash",
		ProviderOllama: "llama3.2",
	}
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider LLMProvider

	// Model is the model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for Gemini).
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// AppSettings holds all application settings.
type AppSettings struct {
	// OCR holds image recognition parameters.
	OCR OCRParameters

	// PDF holds scanned-PDF fallback settings.
	PDF PDFSettings

	// LLM holds LLM provider settings.
	LLM LLMSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The LLM provider defaults to Gemini but is unusable until an API key is
// configured via the settings commands or GOOGLE_API_KEY.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		OCR: DefaultOCRParameters(),
		PDF: DefaultPDFSettings(),
		LLM: LLMSettings{
			Provider: ProviderGemini,
			Model:    DefaultLLMModels()[ProviderGemini],
		},
	}
}

// Validate checks all settings sections.
func (s AppSettings) Validate() error {
	if err := s.OCR.Validate(); err != nil {
		return err
	}
	return s.PDF.Validate()
}

func containsInt(vals []int, v int) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
