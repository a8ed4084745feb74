package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
)

var extractShowText bool

var extractCmd = &cobra.Command{
	Use:   "extract <file>...",
	Short: "Extract text from documents without chatting",
	Long: fmt.Sprintf(`Run the document ingestion pipeline and report per-file results.

Supported formats: %s. Scanned PDFs and images require the tesseract and
poppler tools to be installed.`, strings.Join(domain.SupportedExtensions(), ", ")),
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractShowText, "text", false, "print the extracted text, not just the status")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	files, err := loadFiles(args)
	if err != nil {
		return err
	}

	results := extractionService.ExtractAll(cmd.Context(), files)

	failed := 0
	for _, fr := range results {
		switch fr.Result.Status {
		case domain.StatusSuccess:
			if fr.Result.IsEmpty() {
				cmd.Printf("  %s: ok (no text found)\n", fr.File.Name)
			} else {
				cmd.Printf("  %s: ok (%d characters)\n", fr.File.Name, len(fr.Result.Text))
			}
			if extractShowText && !fr.Result.IsEmpty() {
				cmd.Println(fr.Result.Text)
				cmd.Println()
			}
		case domain.StatusUnsupported:
			failed++
			cmd.Printf("  %s: unsupported file type\n", fr.File.Name)
		default:
			failed++
			cmd.Printf("  %s: failed: %s\n", fr.File.Name, fr.Result.Reason)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) could not be processed", failed, len(results))
	}
	return nil
}

// loadFiles reads paths into upload handles.
func loadFiles(paths []string) ([]domain.UploadedFile, error) {
	files := make([]domain.UploadedFile, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", path, err)
		}
		files = append(files, domain.UploadedFile{
			Name:    filepath.Base(path),
			Content: content,
		})
	}
	return files, nil
}
