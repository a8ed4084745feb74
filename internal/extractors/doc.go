// Package extractors routes uploaded files to per-format text extractors.
//
// Each subpackage handles one file kind and implements driven.Extractor.
// The registry in this package is the dispatcher: a closed routing table by
// filename extension, processing files in upload order with per-file
// isolation.
package extractors
