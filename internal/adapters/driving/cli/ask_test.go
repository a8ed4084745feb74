package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driving"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_Short(t *testing.T) {
	assert.Equal(t, "Ask a single question and print the reply", askCmd.Short)
}

func TestAskCmd_HasFileFlag(t *testing.T) {
	flag := askCmd.Flags().Lookup("file")
	require.NotNil(t, flag, "file flag should exist")
	assert.Equal(t, "f", flag.Shorthand)
}

func TestAskCmd_NothingToSend(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to send")
}

func TestAskCmd_PrintsReply(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mock := &mockChatService{result: &driving.TurnResult{Reply: "The answer is 42.", ModelCalled: true}}
	chatService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "what", "is", "the", "answer"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "The answer is 42.")
	assert.Equal(t, "what is the answer", mock.lastText)
}

func TestAskCmd_AttachesFiles(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mock := &mockChatService{}
	chatService = mock

	path := writeTempFile(t, "report.txt", "quarterly numbers")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--file", path, "summarise this"})
	defer func() {
		rootCmd.SetArgs(nil)
		askFiles = nil
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	require.Len(t, mock.lastFiles, 1)
	assert.Equal(t, "report.txt", mock.lastFiles[0].Name)
	assert.Equal(t, []byte("quarterly numbers"), mock.lastFiles[0].Content)
}

func TestAskCmd_WarnsOnFailedFiles(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	chatService = &mockChatService{result: &driving.TurnResult{
		Reply:       "done",
		ModelCalled: true,
		FileResults: []domain.FileResult{
			{
				File:   domain.UploadedFile{Name: "broken.pdf"},
				Result: domain.ExtractionFailure("invalid PDF"),
			},
			{
				File:   domain.UploadedFile{Name: "movie.mkv"},
				Result: domain.UnsupportedFile(),
			},
		},
	}}

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs([]string{"ask", "hello"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "done")
	assert.Contains(t, errOut.String(), "warning: broken.pdf: invalid PDF")
	assert.Contains(t, errOut.String(), "warning: movie.mkv: unsupported file type")
}

func TestAskCmd_ServiceNotConfigured(t *testing.T) {
	oldService := chatService
	chatService = nil
	defer func() {
		chatService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "hello"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chat service not configured")
}
