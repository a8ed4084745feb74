package services

import (
	"fmt"
	"os"
	"strconv"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driven"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyOCRLanguage    = "ocr.language"
	keyOCRPageSegMode = "ocr.psm"
	keyOCREngineMode  = "ocr.oem"
	keyPDFPopplerPath = "pdf.poppler_path"
	keyPDFMaxPages    = "pdf.max_pages"
	keyLLMProvider    = "llm.provider"
	keyLLMModel       = "llm.model"
	keyLLMBaseURL     = "llm.base_url"
	keyLLMAPIKey      = "llm.api_key"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings with defaults applied.
// A Gemini API key absent from the config falls back to the GOOGLE_API_KEY
// or GEMINI_API_KEY environment variables.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		OCR: domain.OCRParameters{
			Language:    s.getString(keyOCRLanguage, defaults.OCR.Language),
			PageSegMode: s.getInt(keyOCRPageSegMode, defaults.OCR.PageSegMode),
			EngineMode:  s.getInt(keyOCREngineMode, defaults.OCR.EngineMode),
		},
		PDF: domain.PDFSettings{
			PopplerPath: s.configStore.GetString(keyPDFPopplerPath), // No default - empty means PATH lookup
			MaxPages:    s.getInt(keyPDFMaxPages, defaults.PDF.MaxPages),
		},
		LLM: domain.LLMSettings{
			Provider: s.getProvider(keyLLMProvider, defaults.LLM.Provider),
			Model:    s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL:  s.configStore.GetString(keyLLMBaseURL), // No default - empty is valid for cloud providers
			APIKey:   s.configStore.GetString(keyLLMAPIKey),
		},
	}

	if settings.LLM.APIKey == "" && settings.LLM.Provider == domain.ProviderGemini {
		settings.LLM.APIKey = apiKeyFromEnv()
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyOCRLanguage, settings.OCR.Language); err != nil {
		return fmt.Errorf("save ocr language: %w", err)
	}
	if err := s.configStore.Set(keyOCRPageSegMode, settings.OCR.PageSegMode); err != nil {
		return fmt.Errorf("save ocr psm: %w", err)
	}
	if err := s.configStore.Set(keyOCREngineMode, settings.OCR.EngineMode); err != nil {
		return fmt.Errorf("save ocr oem: %w", err)
	}

	if err := s.configStore.Set(keyPDFPopplerPath, settings.PDF.PopplerPath); err != nil {
		return fmt.Errorf("save poppler path: %w", err)
	}
	if err := s.configStore.Set(keyPDFMaxPages, settings.PDF.MaxPages); err != nil {
		return fmt.Errorf("save pdf max pages: %w", err)
	}

	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}

	return nil
}

// SetOCR updates and persists OCR parameters.
func (s *SettingsService) SetOCR(params domain.OCRParameters) error {
	if err := params.Validate(); err != nil {
		return err
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.OCR = params
	return s.Save(settings)
}

// SetPDF updates and persists PDF fallback settings.
func (s *SettingsService) SetPDF(pdf domain.PDFSettings) error {
	if err := pdf.Validate(); err != nil {
		return err
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.PDF = pdf
	return s.Save(settings)
}

// SetLLMProvider configures the LLM provider.
func (s *SettingsService) SetLLMProvider(provider domain.LLMProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: invalid LLM provider: %s", domain.ErrInvalidInput, provider)
	}

	// The key may also come from the environment.
	if provider.RequiresAPIKey() && apiKey == "" && apiKeyFromEnv() == "" {
		return fmt.Errorf("%w: API key required for %s", domain.ErrInvalidInput, provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.LLM.Model = model
	} else if defaultModel, ok := domain.DefaultLLMModels()[provider]; ok {
		settings.LLM.Model = defaultModel
	}

	// Set base URL based on provider type
	if provider.IsLocal() {
		if settings.LLM.BaseURL == "" {
			settings.LLM.BaseURL = "http://localhost:11434"
		}
	} else {
		settings.LLM.BaseURL = ""
	}

	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// apiKeyFromEnv reads the Gemini API key from the conventional env vars.
func apiKeyFromEnv() string {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GEMINI_API_KEY")
}

// getString reads a string value with a default fallback.
func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

// getInt reads an int value with a default fallback.
// Values stored as strings by hand-edited configs are tolerated.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val, ok := s.configStore.Get(key); ok {
		switch v := val.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return defaultVal
}

// getProvider reads an LLM provider value with a default fallback.
func (s *SettingsService) getProvider(key string, defaultVal domain.LLMProvider) domain.LLMProvider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}

	provider := domain.LLMProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
