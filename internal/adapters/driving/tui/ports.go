// Package tui provides the interactive chat terminal interface for docchat.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/haven-labs/docchat-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chat runs chat turns and owns the conversation state.
	Chat driving.ChatService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(chat driving.ChatService, settings driving.SettingsService) *Ports {
	return &Ports{
		Chat:     chat,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	return nil
}
