package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposePrompt(t *testing.T) {
	tests := []struct {
		name       string
		userText   string
		fileBlocks []string
		expected   string
	}{
		{
			name:     "text only",
			userText: "summarise this",
			expected: "summarise this",
		},
		{
			name:       "files only",
			fileBlocks: []string{"Extracted text from a.txt:\nalpha"},
			expected:   "Extracted text from a.txt:\nalpha",
		},
		{
			name:       "multiple files joined with blank lines",
			fileBlocks: []string{"first block", "second block"},
			expected:   "first block\n\nsecond block",
		},
		{
			name:       "text and files",
			userText:   "compare these",
			fileBlocks: []string{"block one", "block two"},
			expected:   "compare these\n\nAttached files contents:\nblock one\n\nblock two",
		},
		{
			name:     "neither",
			expected: EmptyPrompt,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComposePrompt(tc.userText, tc.fileBlocks))
		})
	}
}

func TestComposePromptDeterministic(t *testing.T) {
	blocks := []string{"one", "two"}
	first := ComposePrompt("hi", blocks)
	second := ComposePrompt("hi", blocks)
	assert.Equal(t, first, second)
}
