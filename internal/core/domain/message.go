package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

// Message roles.
const (
	// RoleUser marks messages authored by the user, including the
	// file-derived messages the pipeline appends on their behalf.
	RoleUser Role = "user"

	// RoleAssistant marks model replies.
	RoleAssistant Role = "assistant"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// Message is a single role-tagged entry in a conversation.
// Messages are append-only; they are never edited or removed except by a
// full-conversation clear.
type Message struct {
	// Role is the message author.
	Role Role

	// Content is the message text.
	Content string
}

// Conversation is the ordered message list for the live session.
// Ordering invariant per turn: the user's typed text first (if any), then one
// message per successfully extracted file in upload order, then exactly one
// assistant reply.
type Conversation struct {
	// Messages is the append-only message sequence.
	Messages []Message
}

// Append adds a message to the conversation.
func (c *Conversation) Append(role Role, content string) {
	c.Messages = append(c.Messages, Message{Role: role, Content: content})
}

// Clear removes all messages from the live conversation.
// Saved snapshots are unaffected.
func (c *Conversation) Clear() {
	c.Messages = nil
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.Messages)
}

// Clone returns an independent copy of the conversation.
// Later mutation of the original never affects the copy.
func (c *Conversation) Clone() Conversation {
	if len(c.Messages) == 0 {
		return Conversation{}
	}
	msgs := make([]Message, len(c.Messages))
	copy(msgs, c.Messages)
	return Conversation{Messages: msgs}
}

// Snapshot is a completed-turn copy of a conversation stored in history.
type Snapshot struct {
	// ID is the unique identifier for the snapshot.
	ID string

	// SavedAt is when the snapshot was taken.
	SavedAt time.Time

	// Messages is an independent copy of the conversation at save time.
	Messages []Message
}

// History holds conversation snapshots, one appended after each completed
// turn. Each snapshot is deep-copied so later mutation of the live
// conversation never retroactively changes a saved one.
type History struct {
	snapshots []Snapshot
}

// Add stores an independent snapshot of the conversation.
func (h *History) Add(c Conversation) Snapshot {
	snap := Snapshot{
		ID:       uuid.New().String(),
		SavedAt:  time.Now(),
		Messages: c.Clone().Messages,
	}
	h.snapshots = append(h.snapshots, snap)
	return snap
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Snapshots returns the stored snapshots in save order.
// The returned slice must not be mutated by callers.
func (h *History) Snapshots() []Snapshot {
	return h.snapshots
}

// Select returns an independent conversation copy of snapshot i.
// Selecting history replaces the live conversation wholesale; the copy keeps
// the stored snapshot isolated from whatever the caller does next.
func (h *History) Select(i int) (Conversation, error) {
	if i < 0 || i >= len(h.snapshots) {
		return Conversation{}, ErrNotFound
	}
	stored := Conversation{Messages: h.snapshots[i].Messages}
	return stored.Clone(), nil
}
