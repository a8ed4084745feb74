// Package poppler rasterises PDF pages to PNG images with pdftoppm.
package poppler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure Rasteriser implements the interface.
var _ driven.Rasteriser = (*Rasteriser)(nil)

const binaryName = "pdftoppm"

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

// Rasteriser converts PDF pages to page images by shelling out to pdftoppm.
// An optional directory hint takes precedence over PATH lookup, for installs
// that are not on PATH.
type Rasteriser struct {
	runner driven.CommandRunner
	hint   string
	binary string
}

// New creates a rasteriser. popplerPath may name a directory containing the
// poppler binaries; pass "" to rely on PATH.
func New(popplerPath string) *Rasteriser {
	return &Rasteriser{runner: execRunner{}, hint: popplerPath}
}

// NewWithRunner creates a rasteriser with a custom command runner for
// testing. The binary probe is skipped.
func NewWithRunner(runner driven.CommandRunner) *Rasteriser {
	return &Rasteriser{runner: runner, binary: binaryName}
}

// CheckAvailable reports whether a pdftoppm binary can be found on PATH.
func CheckAvailable() error {
	_, err := findBinary("")
	return err
}

func findBinary(hint string) (string, error) {
	if hint != "" {
		candidate := filepath.Join(hint, binaryName)
		if runtime.GOOS == "windows" {
			candidate += ".exe"
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	if path, err := exec.LookPath(binaryName); err == nil {
		return path, nil
	}
	return "", domain.ErrRasteriserNotFound
}

// Available resolves and caches the binary path.
func (r *Rasteriser) Available() error {
	if r.binary != "" {
		return nil
	}
	path, err := findBinary(r.hint)
	if err != nil {
		return err
	}
	r.binary = path
	return nil
}

// Rasterise renders pages 1..maxPages of the document to PNG at the given
// DPI and returns them in page order.
func (r *Rasteriser) Rasterise(ctx context.Context, content []byte, dpi, maxPages int) ([][]byte, error) {
	if err := r.Available(); err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "docchat-raster-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	pdfPath := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(pdfPath, content, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	prefix := filepath.Join(dir, "page")
	args := []string{
		"-png",
		"-r", strconv.Itoa(dpi),
		"-f", "1",
		"-l", strconv.Itoa(maxPages),
		pdfPath, prefix,
	}
	if _, err := r.runner.Run(ctx, r.binary, args...); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w", err)
	}

	// pdftoppm zero-pads page numbers, so lexical order is page order.
	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to list page images: %w", err)
	}
	sort.Strings(matches)

	pages := make([][]byte, 0, len(matches))
	for _, m := range matches {
		data, err := os.ReadFile(m)
		if err != nil {
			return nil, fmt.Errorf("failed to read page image: %w", err)
		}
		pages = append(pages, data)
	}
	return pages, nil
}

// InstallInstructions returns guidance for installing the poppler tools.
func InstallInstructions() string {
	return `PDF rasterisation requires the poppler pdftoppm binary:
  macOS:         brew install poppler
  Ubuntu/Debian: sudo apt install poppler-utils
  Windows:       https://github.com/oschwartz10612/poppler-windows (then set pdf.poppler_path)`
}
