package services

import (
	"fmt"
	"strings"
)

// EmptyPrompt is returned when neither typed text nor file content exists.
// Callers treat it as a signal to skip the model call.
const EmptyPrompt = "No user message or file content to send."

// ComposePrompt builds the outbound prompt from the typed text and the
// per-file content blocks. Blocks are joined with blank lines; when both
// parts are present the file contents follow the typed text under a fixed
// header. The result is deterministic for given inputs.
func ComposePrompt(userText string, fileBlocks []string) string {
	combined := strings.Join(fileBlocks, "\n\n")

	switch {
	case userText != "" && combined != "":
		return fmt.Sprintf("%s\n\nAttached files contents:\n%s", userText, combined)
	case userText != "":
		return userText
	case combined != "":
		return combined
	default:
		return EmptyPrompt
	}
}
