package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
)

var askFiles []string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the reply",
	Long: `Send one message to the model and print the reply, without entering
the interactive chat. Attach documents with --file; their extracted text is
sent alongside the question.`,
	Args: cobra.ArbitraryArgs,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringSliceVarP(&askFiles, "file", "f", nil, "file to attach (repeatable)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" && len(askFiles) == 0 {
		return errors.New("nothing to send: give a question, --file, or both")
	}

	files, err := loadFiles(askFiles)
	if err != nil {
		return err
	}

	result, err := chatService.Send(cmd.Context(), question, files)
	if err != nil {
		return fmt.Errorf("chat turn failed: %w", err)
	}

	for _, fr := range result.FileResults {
		switch fr.Result.Status {
		case domain.StatusFailure:
			cmd.PrintErrf("warning: %s: %s\n", fr.File.Name, fr.Result.Reason)
		case domain.StatusUnsupported:
			cmd.PrintErrf("warning: %s: unsupported file type\n", fr.File.Name)
		}
	}

	cmd.Println(result.Reply)
	return nil
}
