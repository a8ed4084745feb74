package driving

import (
	"context"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
)

// TurnResult reports what one completed send action produced.
type TurnResult struct {
	// Prompt is the composed outbound prompt, always deterministic.
	Prompt string

	// Reply is the assistant text appended to the conversation. On model
	// failure this is display-able error text, never an unhandled error.
	Reply string

	// FileResults holds the per-file extraction outcomes, in upload order.
	FileResults []domain.FileResult

	// ModelCalled is false when the sentinel prompt short-circuited the
	// model call.
	ModelCalled bool
}

// ChatService drives a single chat session: turn handling, the live
// conversation and the snapshot history.
type ChatService interface {
	// Send runs one turn: extracts the files, composes the prompt, calls
	// the model, appends all resulting messages and snapshots the
	// conversation. userText may be empty when files are attached.
	Send(ctx context.Context, userText string, files []domain.UploadedFile) (*TurnResult, error)

	// Messages returns the live conversation messages in order.
	Messages() []domain.Message

	// Clear empties the live conversation. Saved snapshots are unaffected.
	Clear()

	// History returns the saved conversation snapshots in save order.
	History() []domain.Snapshot

	// SelectHistory replaces the live conversation with a copy of
	// snapshot i. Returns domain.ErrNotFound for an invalid index.
	SelectHistory(i int) error
}
