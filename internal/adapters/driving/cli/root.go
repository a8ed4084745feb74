// Package cli provides the cobra command-line interface for docchat.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driving"
	"github.com/haven-labs/docchat-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// verbose enables debug logging.
var verbose bool

// Services injected by the composition root.
var (
	chatService       driving.ChatService
	extractionService driving.ExtractionService
	settingsService   driving.SettingsService
	validateLLM       func(ctx context.Context, settings *domain.LLMSettings) error
)

// Services bundles everything the CLI commands need.
type Services struct {
	Chat       driving.ChatService
	Extraction driving.ExtractionService
	Settings   driving.SettingsService

	// ValidateLLM pings a provider configuration before it is saved.
	ValidateLLM func(ctx context.Context, settings *domain.LLMSettings) error
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	chatService = s.Chat
	extractionService = s.Extraction
	settingsService = s.Settings
	validateLLM = s.ValidateLLM
}

var rootCmd = &cobra.Command{
	Use:   "docchat",
	Short: "Chat with an LLM about your documents",
	Long: `docchat is a terminal chat client with document ingestion.

Attach text files, PDFs, DOCX documents or images to a message and their
extracted contents are sent to the model alongside your text. Scanned PDFs
and images are read with OCR.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
