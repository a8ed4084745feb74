package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unrecognised file type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrOCREngineNotFound indicates the OCR binary is absent from the host.
	// This is an operator-fixable environment issue, not a data issue, so it
	// is kept distinct from recognition failures.
	ErrOCREngineNotFound = errors.New("OCR engine not found")

	// ErrRasteriserNotFound indicates the PDF page rasteriser is absent.
	ErrRasteriserNotFound = errors.New("page rasterizer unavailable")

	// ErrLLMUnavailable indicates the LLM service is not configured or
	// unreachable. Chat turns cannot complete without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
