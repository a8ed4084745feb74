package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAssistant.IsValid())
	assert.False(t, Role("system").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestConversationAppendOrder(t *testing.T) {
	var c Conversation
	c.Append(RoleUser, "hello")
	c.Append(RoleUser, "Extracted text from a.png:\nsome text")
	c.Append(RoleAssistant, "hi there")

	require.Equal(t, 3, c.Len())
	assert.Equal(t, RoleUser, c.Messages[0].Role)
	assert.Equal(t, "hello", c.Messages[0].Content)
	assert.Equal(t, RoleAssistant, c.Messages[2].Role)
}

func TestConversationClear(t *testing.T) {
	var c Conversation
	c.Append(RoleUser, "hello")
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestConversationCloneIsIndependent(t *testing.T) {
	var c Conversation
	c.Append(RoleUser, "original")

	clone := c.Clone()
	c.Messages[0].Content = "mutated"
	c.Append(RoleAssistant, "extra")

	require.Equal(t, 1, clone.Len())
	assert.Equal(t, "original", clone.Messages[0].Content)
}

func TestConversationCloneEmpty(t *testing.T) {
	var c Conversation
	clone := c.Clone()
	assert.Equal(t, 0, clone.Len())
}

func TestHistoryAddDeepCopies(t *testing.T) {
	var c Conversation
	c.Append(RoleUser, "turn one")
	c.Append(RoleAssistant, "reply one")

	var h History
	snap := h.Add(c)
	require.NotEmpty(t, snap.ID)
	require.Equal(t, 1, h.Len())

	// Mutating the live conversation must not change the stored snapshot.
	c.Messages[0].Content = "rewritten"
	c.Clear()

	stored := h.Snapshots()[0]
	require.Len(t, stored.Messages, 2)
	assert.Equal(t, "turn one", stored.Messages[0].Content)
}

func TestHistorySelectReturnsIsolatedCopy(t *testing.T) {
	var c Conversation
	c.Append(RoleUser, "saved")

	var h History
	h.Add(c)

	selected, err := h.Select(0)
	require.NoError(t, err)
	require.Equal(t, 1, selected.Len())

	// Round-trip: select then clear must not mutate the stored snapshot.
	selected.Messages[0].Content = "changed"
	selected.Clear()

	again, err := h.Select(0)
	require.NoError(t, err)
	require.Equal(t, 1, again.Len())
	assert.Equal(t, "saved", again.Messages[0].Content)
}

func TestHistorySelectOutOfRange(t *testing.T) {
	var h History

	_, err := h.Select(0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = h.Select(-1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistorySnapshotIDsAreUnique(t *testing.T) {
	var c Conversation
	c.Append(RoleUser, "x")

	var h History
	a := h.Add(c)
	b := h.Add(c)
	assert.NotEqual(t, a.ID, b.ID)
}
