// Package docx extracts paragraph text from .docx uploads.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/haven-labs/docchat-cli/internal/core/domain"
	"github.com/haven-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles DOCX documents.
// A DOCX file is a ZIP container; the body text lives in word/document.xml
// as paragraphs of runs. Paragraph texts are joined with newlines in
// document order.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Kind returns the file kind this extractor handles.
func (e *Extractor) Kind() domain.FileKind {
	return domain.KindDOCX
}

// Extract pulls paragraph text from the document container.
func (e *Extractor) Extract(_ context.Context, file domain.UploadedFile) domain.ExtractionResult {
	reader, err := zip.NewReader(bytes.NewReader(file.Content), int64(len(file.Content)))
	if err != nil {
		return domain.ExtractionFailure(fmt.Sprintf("invalid DOCX: %v", err))
	}

	content, err := extractDocumentText(reader)
	if err != nil {
		return domain.ExtractionFailure(fmt.Sprintf("invalid DOCX: %v", err))
	}

	return domain.Extracted(content)
}

// extractDocumentText extracts text from word/document.xml.
// A container without a document part yields empty text, not an error.
func extractDocumentText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", err
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}

		return parseDocumentXML(content)
	}
	return "", nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML joins paragraph texts with newlines, trimmed.
func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", err
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, text := range r.Text {
				result.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(result.String()), nil
}
