package cli

import (
	"context"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driving"
)

// Mock services for command tests.

type mockChatService struct {
	lastText  string
	lastFiles []domain.UploadedFile
	result    *driving.TurnResult
	err       error
}

func (m *mockChatService) Send(_ context.Context, userText string, files []domain.UploadedFile) (*driving.TurnResult, error) {
	m.lastText = userText
	m.lastFiles = files
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &driving.TurnResult{Reply: "mock reply", ModelCalled: true}, nil
}

func (m *mockChatService) Messages() []domain.Message { return nil }
func (m *mockChatService) Clear()                     {}
func (m *mockChatService) History() []domain.Snapshot { return nil }
func (m *mockChatService) SelectHistory(_ int) error  { return nil }

type mockExtractionService struct {
	// results maps filename to a canned outcome. Unlisted files succeed
	// with their content echoed back as text.
	results map[string]domain.ExtractionResult
}

func (m *mockExtractionService) ExtractAll(_ context.Context, files []domain.UploadedFile) []domain.FileResult {
	out := make([]domain.FileResult, 0, len(files))
	for _, f := range files {
		result, ok := m.results[f.Name]
		if !ok {
			result = domain.Extracted(string(f.Content))
		}
		out = append(out, domain.FileResult{File: f, Result: result})
	}
	return out
}

type mockSettingsService struct {
	settings     *domain.AppSettings
	getErr       error
	savedOCR     *domain.OCRParameters
	savedPDF     *domain.PDFSettings
	setProvider  domain.LLMProvider
	setModel     string
	setAPIKey    string
	setLLMCalled bool
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.settings != nil {
		return m.settings, nil
	}
	defaults := domain.DefaultAppSettings()
	return &defaults, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return nil }

func (m *mockSettingsService) SetOCR(params domain.OCRParameters) error {
	m.savedOCR = &params
	return nil
}

func (m *mockSettingsService) SetPDF(settings domain.PDFSettings) error {
	m.savedPDF = &settings
	return nil
}

func (m *mockSettingsService) SetLLMProvider(provider domain.LLMProvider, model, apiKey string) error {
	m.setLLMCalled = true
	m.setProvider = provider
	m.setModel = model
	m.setAPIKey = apiKey
	return nil
}

// setupTestServices swaps the package-level services for mocks and returns a
// cleanup that restores the originals.
func setupTestServices() func() {
	oldChat := chatService
	oldExtraction := extractionService
	oldSettings := settingsService
	oldValidate := validateLLM

	chatService = &mockChatService{}
	extractionService = &mockExtractionService{}
	settingsService = &mockSettingsService{}
	validateLLM = nil

	return func() {
		chatService = oldChat
		extractionService = oldExtraction
		settingsService = oldSettings
		validateLLM = oldValidate
	}
}
