package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driven"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driving"
	"github.com/haven-labs/docchat-cli/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// UploadPlaceholder is the user message recorded when files are sent without
// typed text, so the transcript shows what prompted the reply.
const UploadPlaceholder = "Uploaded files (no typed message). Please respond to their contents."

// ChatService orchestrates chat turns: file ingestion, prompt composition,
// the model call and conversation bookkeeping.
type ChatService struct {
	llm        driven.LLMService
	extraction driving.ExtractionService

	mu      sync.Mutex
	conv    domain.Conversation
	history domain.History
}

// NewChatService creates a chat service. llm may be nil when no provider is
// configured; turns then complete with an error reply instead of failing.
func NewChatService(llm driven.LLMService, extraction driving.ExtractionService) *ChatService {
	return &ChatService{llm: llm, extraction: extraction}
}

// Send runs one complete turn.
//
// Message ordering per turn: the typed text (or the upload placeholder when
// only files were sent), then one message per successfully extracted
// non-empty file in upload order, then exactly one assistant reply. A model
// failure becomes display text in the reply; Send returns an error only when
// there is nothing to do at all.
func (s *ChatService) Send(ctx context.Context, userText string, files []domain.UploadedFile) (*driving.TurnResult, error) {
	text := strings.TrimSpace(userText)
	if text == "" && len(files) == 0 {
		return nil, fmt.Errorf("%w: empty turn", domain.ErrInvalidInput)
	}

	results := s.extraction.ExtractAll(ctx, files)

	// One content block per successful non-empty extraction, upload order.
	// Failed and unsupported files surface in FileResults but contribute
	// nothing to the prompt.
	fileBlocks := make([]string, 0, len(results))
	for _, fr := range results {
		if fr.Result.IsSuccess() && !fr.Result.IsEmpty() {
			fileBlocks = append(fileBlocks,
				fmt.Sprintf("Extracted text from %s:\n%s", fr.File.Name, fr.Result.Text))
		}
	}

	prompt := ComposePrompt(text, fileBlocks)

	s.mu.Lock()
	defer s.mu.Unlock()

	if text != "" {
		s.conv.Append(domain.RoleUser, text)
	} else {
		s.conv.Append(domain.RoleUser, UploadPlaceholder)
	}
	for _, block := range fileBlocks {
		s.conv.Append(domain.RoleUser, block)
	}

	reply, modelCalled := s.reply(ctx, prompt)
	s.conv.Append(domain.RoleAssistant, reply)

	snap := s.history.Add(s.conv)
	logger.Debug("turn complete: %d message(s), snapshot %s", s.conv.Len(), snap.ID)

	return &driving.TurnResult{
		Prompt:      prompt,
		Reply:       reply,
		FileResults: results,
		ModelCalled: modelCalled,
	}, nil
}

// reply produces the assistant text for a composed prompt.
// The empty-prompt sentinel and model failures both fail open into
// display text so the turn always completes.
func (s *ChatService) reply(ctx context.Context, prompt string) (string, bool) {
	if prompt == EmptyPrompt {
		return EmptyPrompt, false
	}
	if s.llm == nil {
		return "Model error: no LLM provider configured. Run 'docchat settings llm' to set one up.", false
	}

	out, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		logger.Warn("model call failed: %v", err)
		return fmt.Sprintf("Model error: %v", err), true
	}
	return strings.TrimSpace(out), true
}

// Messages returns the live conversation messages in order.
func (s *ChatService) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conv.Clone().Messages
}

// Clear empties the live conversation. Saved snapshots are unaffected.
func (s *ChatService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conv.Clear()
}

// History returns the saved snapshots in save order.
func (s *ChatService) History() []domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Snapshots()
}

// SelectHistory replaces the live conversation with a copy of snapshot i.
func (s *ChatService) SelectHistory(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.history.Select(i)
	if err != nil {
		return err
	}
	s.conv = conv
	return nil
}
