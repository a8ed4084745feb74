package domain

// ExtractionStatus tags the outcome of extracting one file.
type ExtractionStatus int

// Extraction outcomes.
const (
	// StatusSuccess means text was produced. The text may be empty after
	// trimming: absence of text in an input is a valid outcome, not an error.
	StatusSuccess ExtractionStatus = iota

	// StatusFailure means a diagnosable error occurred (tool missing,
	// decode error, conversion error).
	StatusFailure

	// StatusUnsupported means the file type is outside the routing table.
	StatusUnsupported
)

// ExtractionResult is the tagged outcome of one extractor run.
// Results are freshly constructed per file and never mutated.
type ExtractionResult struct {
	// Status tags the outcome.
	Status ExtractionStatus

	// Text is the extracted text. Only meaningful on StatusSuccess.
	Text string

	// Reason is the human-readable failure detail. Only meaningful on
	// StatusFailure.
	Reason string
}

// Extracted builds a success result.
func Extracted(text string) ExtractionResult {
	return ExtractionResult{Status: StatusSuccess, Text: text}
}

// ExtractionFailure builds a failure result with a display-able reason.
func ExtractionFailure(reason string) ExtractionResult {
	return ExtractionResult{Status: StatusFailure, Reason: reason}
}

// UnsupportedFile builds the unsupported-type result.
func UnsupportedFile() ExtractionResult {
	return ExtractionResult{Status: StatusUnsupported}
}

// IsSuccess returns true for success results, including empty text.
func (r ExtractionResult) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// IsEmpty returns true for success results that produced no text.
func (r ExtractionResult) IsEmpty() bool {
	return r.Status == StatusSuccess && r.Text == ""
}

// FileResult pairs an uploaded file with its extraction outcome.
// The dispatcher produces one per input file, in upload order.
type FileResult struct {
	// File is the input as received.
	File UploadedFile

	// Result is the extraction outcome for this file.
	Result ExtractionResult
}
