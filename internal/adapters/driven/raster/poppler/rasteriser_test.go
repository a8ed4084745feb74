package poppler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driven"
)

// mockRunner is a test double for CommandRunner.
type mockRunner struct {
	err      error
	lastName string
	lastArgs []string
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	m.lastName = name
	m.lastArgs = args
	return nil, m.err
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Rasteriser = (*Rasteriser)(nil)
}

func TestAvailableWithInjectedRunner(t *testing.T) {
	r := NewWithRunner(&mockRunner{})
	assert.NoError(t, r.Available())
}

func TestAvailableWithDirectoryHint(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, binaryName)
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\n"), 0o755))

	r := New(dir)
	require.NoError(t, r.Available())
	assert.Equal(t, fake, r.binary)
}

func TestAvailableBadHintFallsBackToPath(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "missing"))
	err := r.Available()
	if CheckAvailable() == nil {
		assert.NoError(t, err)
	} else {
		assert.ErrorIs(t, err, domain.ErrRasteriserNotFound)
	}
}

func TestRasteriseCommandArguments(t *testing.T) {
	runner := &mockRunner{}
	r := NewWithRunner(runner)

	pages, err := r.Rasterise(context.Background(), []byte("%PDF-1.4 fake"), 200, 7)
	require.NoError(t, err)
	assert.Empty(t, pages, "mock runner writes no page files")

	assert.Equal(t, binaryName, runner.lastName)
	require.Len(t, runner.lastArgs, 9)
	assert.Equal(t, "-png", runner.lastArgs[0])
	assert.Equal(t, []string{"-r", "200"}, runner.lastArgs[1:3])
	assert.Equal(t, []string{"-f", "1"}, runner.lastArgs[3:5])
	assert.Equal(t, []string{"-l", "7"}, runner.lastArgs[5:7])
}

func TestRasteriseRunnerError(t *testing.T) {
	runner := &mockRunner{err: errors.New("syntax error in PDF")}
	r := NewWithRunner(runner)

	_, err := r.Rasterise(context.Background(), []byte("%PDF-1.4 fake"), 200, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdftoppm failed")
	assert.Contains(t, err.Error(), "syntax error")
}

func TestRasteriseUnavailable(t *testing.T) {
	if CheckAvailable() == nil {
		t.Skip("pdftoppm is installed, cannot exercise the missing-binary path")
	}

	r := New("")
	_, err := r.Rasterise(context.Background(), []byte("%PDF-1.4 fake"), 200, 10)
	assert.ErrorIs(t, err, domain.ErrRasteriserNotFound)
}

func TestInstallInstructions(t *testing.T) {
	instructions := InstallInstructions()
	assert.Contains(t, instructions, "pdftoppm")
	assert.Contains(t, instructions, "brew install poppler")
	assert.Contains(t, instructions, "apt install poppler-utils")
}
