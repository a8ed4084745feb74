package tesseract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driven"
)

// mockRunner is a test double for CommandRunner.
type mockRunner struct {
	output   []byte
	err      error
	lastName string
	lastArgs []string
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	m.lastName = name
	m.lastArgs = args
	return m.output, m.err
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.OCREngine = (*Engine)(nil)
}

func TestNewWithRunner(t *testing.T) {
	runner := &mockRunner{}
	engine := NewWithRunner(runner)
	require.NotNil(t, engine)
	assert.Equal(t, runner, engine.runner)
}

func TestAvailableWithInjectedRunner(t *testing.T) {
	// An injected runner skips the PATH probe entirely.
	engine := NewWithRunner(&mockRunner{})
	assert.NoError(t, engine.Available())
}

func TestRecognise(t *testing.T) {
	runner := &mockRunner{output: []byte("recognised text\n")}
	engine := NewWithRunner(runner)

	text, err := engine.Recognise(context.Background(), []byte("png bytes"), domain.OCRParameters{
		Language:    "deu",
		PageSegMode: 6,
		EngineMode:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, "recognised text\n", text)

	assert.Equal(t, binaryName, runner.lastName)
	require.Len(t, runner.lastArgs, 8)
	assert.Equal(t, "stdout", runner.lastArgs[1])
	assert.Equal(t, []string{"-l", "deu"}, runner.lastArgs[2:4])
	assert.Equal(t, []string{"--psm", "6"}, runner.lastArgs[4:6])
	assert.Equal(t, []string{"--oem", "1"}, runner.lastArgs[6:8])
}

func TestRecogniseRunnerError(t *testing.T) {
	runner := &mockRunner{err: errors.New("tesseract crashed")}
	engine := NewWithRunner(runner)

	_, err := engine.Recognise(context.Background(), []byte("png bytes"), domain.DefaultOCRParameters())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract failed")
	assert.Contains(t, err.Error(), "tesseract crashed")
}

func TestRecogniseUnavailable(t *testing.T) {
	if CheckAvailable() == nil {
		t.Skip("tesseract is installed, cannot exercise the missing-binary path")
	}

	engine := New()
	_, err := engine.Recognise(context.Background(), []byte("png bytes"), domain.DefaultOCRParameters())
	assert.ErrorIs(t, err, domain.ErrOCREngineNotFound)
}

func TestInstallInstructions(t *testing.T) {
	instructions := InstallInstructions()
	assert.Contains(t, instructions, "tesseract")
	assert.Contains(t, instructions, "brew install tesseract")
	assert.Contains(t, instructions, "apt install tesseract-ocr")
}

// Integration test - only runs if tesseract is available.
func TestRecognise_Integration(t *testing.T) {
	if err := CheckAvailable(); err != nil {
		t.Skip("tesseract not available, skipping integration test")
	}
	t.Skip("integration test requires a sample image")
}
