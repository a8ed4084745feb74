package driven

import "context"

// CommandRunner abstracts external binary execution so adapters that shell
// out (tesseract, pdftoppm) can be tested with a stub.
type CommandRunner interface {
	// Run executes the named binary with args and returns combined stdout.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
