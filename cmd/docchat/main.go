// Command docchat is a terminal chat client with document ingestion.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/haven-labs/docchat-cli/internal/adapters/driven/ai"
	"github.com/haven-labs/docchat-cli/internal/adapters/driven/config/file"
	"github.com/haven-labs/docchat-cli/internal/adapters/driven/ocr/tesseract"
	"github.com/haven-labs/docchat-cli/internal/adapters/driven/raster/poppler"
	"github.com/haven-labs/docchat-cli/internal/adapters/driving/cli"
	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/services"
	"github.com/haven-labs/docchat-cli/internal/extractors"
	"github.com/haven-labs/docchat-cli/internal/extractors/docx"
	"github.com/haven-labs/docchat-cli/internal/extractors/image"
	"github.com/haven-labs/docchat-cli/internal/extractors/pdf"
	"github.com/haven-labs/docchat-cli/internal/extractors/plaintext"
	"github.com/haven-labs/docchat-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to open config store: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// An unreachable or unconfigured model must not block extraction-only
	// use; chat turns report the problem per turn instead.
	llm, err := ai.CreateAndValidateLLMService(ctx, &settings.LLM)
	if err != nil {
		logger.Warn("LLM unavailable: %v", err)
	}

	// Missing OCR tools degrade image and scanned-PDF extraction only, so
	// warn instead of failing startup.
	if err := tesseract.CheckAvailable(); err != nil {
		logger.Warn("tesseract not found, image OCR disabled. %s", tesseract.InstallInstructions())
	}
	if err := poppler.CheckAvailable(); err != nil && settings.PDF.PopplerPath == "" {
		logger.Warn("pdftoppm not found, scanned-PDF OCR disabled. %s", poppler.InstallInstructions())
	}

	extractionService := services.NewExtractionService(settingsService, newDispatcher)
	chatService := services.NewChatService(llm, extractionService)

	cli.SetServices(&cli.Services{
		Chat:        chatService,
		Extraction:  extractionService,
		Settings:    settingsService,
		ValidateLLM: ai.ValidateLLMConfig,
	})

	return cli.Execute()
}

// newDispatcher assembles the extractor registry for one dispatch batch
// using the settings snapshot taken at batch start.
func newDispatcher(s domain.AppSettings) services.Dispatcher {
	engine := tesseract.New()
	raster := poppler.New(s.PDF.PopplerPath)
	return extractors.NewRegistry(
		plaintext.New(),
		docx.New(),
		image.New(engine, s.OCR),
		pdf.New(engine, raster, s.OCR, s.PDF),
	)
}
