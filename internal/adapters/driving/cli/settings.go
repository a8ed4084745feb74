package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure OCR parameters, PDF handling and the LLM provider.

Use subcommands to configure specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsOCRCmd = &cobra.Command{
	Use:   "ocr",
	Short: "Configure OCR parameters",
	Long: `Configure how images and scanned PDF pages are recognised.

Page segmentation modes:
  3  - Fully automatic page segmentation (default)
  6  - Assume a single uniform block of text
  7  - Treat the image as a single text line
  11 - Sparse text, find as much text as possible

Engine modes:
  0 - Legacy engine only
  1 - Neural nets LSTM engine only
  2 - Legacy + LSTM
  3 - Default, based on what is available`,
	RunE: runSettingsOCR,
}

var settingsPDFCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Configure scanned-PDF handling",
	Long: `Configure the OCR fallback for PDFs without embedded text: the page
cap and, on systems where poppler is not on PATH, its install directory.`,
	RunE: runSettingsPDF,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Configure LLM provider",
	Long:  `Configure the model provider used for chat replies.`,
	RunE:  runSettingsLLM,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsOCRCmd)
	settingsCmd.AddCommand(settingsPDFCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[OCR]")
	cmd.Printf("  Language: %s\n", settings.OCR.Language)
	cmd.Printf("  Page segmentation mode: %d\n", settings.OCR.PageSegMode)
	cmd.Printf("  Engine mode: %d\n", settings.OCR.EngineMode)
	cmd.Println()

	cmd.Println("[PDF]")
	cmd.Printf("  Max OCR pages: %d\n", settings.PDF.MaxPages)
	if settings.PDF.PopplerPath != "" {
		cmd.Printf("  Poppler path: %s\n", settings.PDF.PopplerPath)
	} else {
		cmd.Printf("  Poppler path: (PATH lookup)\n")
	}
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", settings.LLM.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	if settings.LLM.Provider.IsLocal() {
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	}
	if settings.LLM.Provider.RequiresAPIKey() {
		if settings.LLM.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	status := "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured - run 'docchat settings llm'"
	}
	cmd.Printf("  Status: %s\n", status)

	return nil
}

func runSettingsOCR(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Printf("Language [%s]: ", settings.OCR.Language)
	language := readLine(reader)
	if language == "" {
		language = settings.OCR.Language
	}

	psm := readIntChoice(cmd, reader, "Page segmentation mode",
		domain.ValidPageSegModes(), settings.OCR.PageSegMode)
	oem := readIntChoice(cmd, reader, "Engine mode",
		domain.ValidEngineModes(), settings.OCR.EngineMode)

	params := domain.OCRParameters{Language: language, PageSegMode: psm, EngineMode: oem}
	if err := settingsService.SetOCR(params); err != nil {
		return fmt.Errorf("failed to save OCR parameters: %w", err)
	}

	cmd.Printf("OCR parameters saved: lang=%s psm=%d oem=%d\n", language, psm, oem)
	return nil
}

func runSettingsPDF(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Printf("Max pages to OCR per PDF (%d-%d) [%d]: ",
		domain.MinPDFPages, domain.MaxPDFPages, settings.PDF.MaxPages)
	maxPages := settings.PDF.MaxPages
	if input := readLine(reader); input != "" {
		val, err := strconv.Atoi(input)
		if err != nil {
			return fmt.Errorf("invalid page count: %q", input)
		}
		maxPages = val
	}

	cmd.Printf("Poppler install directory, empty for PATH lookup [%s]: ", settings.PDF.PopplerPath)
	popplerPath := readLine(reader)
	if popplerPath == "" {
		popplerPath = settings.PDF.PopplerPath
	} else if popplerPath == "-" {
		popplerPath = ""
	}

	pdf := domain.PDFSettings{PopplerPath: popplerPath, MaxPages: maxPages}
	if err := settingsService.SetPDF(pdf); err != nil {
		return fmt.Errorf("failed to save PDF settings: %w", err)
	}

	cmd.Printf("PDF settings saved: max_pages=%d\n", maxPages)
	return nil
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Select LLM Provider")
	providers := domain.AllLLMProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selectedProvider := providers[idx-1]

	// Get model
	defaultModel := domain.DefaultLLMModels()[selectedProvider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	// Get API key if needed
	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		cmd.Print("Enter API key (empty keeps GOOGLE_API_KEY/GEMINI_API_KEY): ")
		apiKey = readPassword()
		cmd.Println()
	}

	if err := settingsService.SetLLMProvider(selectedProvider, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}

	// Validate the configuration by pinging the provider
	if validateLLM != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to reload settings: %w", err)
		}
		cmd.Print("Validating configuration... ")
		if err := validateLLM(cmd.Context(), &settings.LLM); err != nil {
			cmd.Printf("FAILED: %v\n", err)
			return fmt.Errorf("LLM configuration validation failed: %w", err)
		}
		cmd.Println("OK")
	}

	cmd.Printf("LLM provider configured: %s (%s)\n", selectedProvider.Description(), model)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readIntChoice prompts for one of the allowed values, keeping the current
// value on empty or invalid input.
func readIntChoice(cmd *cobra.Command, reader *bufio.Reader, label string, allowed []int, current int) int {
	opts := make([]string, len(allowed))
	for i, v := range allowed {
		opts[i] = strconv.Itoa(v)
	}
	cmd.Printf("%s (%s) [%d]: ", label, strings.Join(opts, "/"), current)

	input := readLine(reader)
	if input == "" {
		return current
	}
	val, err := strconv.Atoi(input)
	if err != nil {
		return current
	}
	for _, v := range allowed {
		if v == val {
			return val
		}
	}
	return current
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
