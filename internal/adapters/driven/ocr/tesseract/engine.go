// Package tesseract drives the Tesseract OCR binary through os/exec.
package tesseract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.OCREngine = (*Engine)(nil)

const binaryName = "tesseract"

// Default install locations probed when the binary is not on PATH.
var windowsFallbackPaths = []string{
	`C:\Program Files\Tesseract-OCR\tesseract.exe`,
	`C:\Program Files (x86)\Tesseract-OCR\tesseract.exe`,
}

// execRunner is the real command runner using os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, bytes.TrimSpace(exitErr.Stderr))
		}
		return nil, err
	}
	return out, nil
}

// Engine recognises text in images by shelling out to tesseract.
// The binary is located lazily on first use and cached.
type Engine struct {
	runner driven.CommandRunner
	binary string
}

// New creates an engine that resolves the tesseract binary from the
// environment.
func New() *Engine {
	return &Engine{runner: execRunner{}}
}

// NewWithRunner creates an engine with a custom command runner for testing.
// The PATH probe is skipped.
func NewWithRunner(runner driven.CommandRunner) *Engine {
	return &Engine{runner: runner, binary: binaryName}
}

// CheckAvailable reports whether a tesseract binary can be found, without
// constructing an engine.
func CheckAvailable() error {
	_, err := findBinary()
	return err
}

// findBinary locates tesseract on PATH, then in the default Windows install
// directories.
func findBinary() (string, error) {
	if path, err := exec.LookPath(binaryName); err == nil {
		return path, nil
	}
	if runtime.GOOS == "windows" {
		for _, path := range windowsFallbackPaths {
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}
	return "", domain.ErrOCREngineNotFound
}

// Available resolves and caches the binary path.
func (e *Engine) Available() error {
	if e.binary != "" {
		return nil
	}
	path, err := findBinary()
	if err != nil {
		return err
	}
	e.binary = path
	return nil
}

// Recognise writes the image to a temporary file and runs tesseract over it,
// reading the recognised text from stdout.
func (e *Engine) Recognise(ctx context.Context, image []byte, params domain.OCRParameters) (string, error) {
	if err := e.Available(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "docchat-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(image); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	args := []string{
		tmp.Name(), "stdout",
		"-l", params.Language,
		"--psm", strconv.Itoa(params.PageSegMode),
		"--oem", strconv.Itoa(params.EngineMode),
	}
	out, err := e.runner.Run(ctx, e.binary, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w", err)
	}

	return string(out), nil
}

// InstallInstructions returns guidance for installing tesseract.
func InstallInstructions() string {
	return `OCR requires the tesseract binary:
  macOS:         brew install tesseract
  Ubuntu/Debian: sudo apt install tesseract-ocr
  Windows:       https://github.com/UB-Mannheim/tesseract/wiki`
}
