package domain

import (
	"path/filepath"
	"strings"
)

// UploadedFile is an opaque handle to uploaded bytes plus the declared name.
// It is immutable once received and scoped to a single dispatch call.
type UploadedFile struct {
	// Name is the declared filename, including extension.
	Name string

	// Content is the raw bytes.
	Content []byte
}

// FileKind is the closed set of formats the dispatcher routes on.
// Adding a format means adding a variant here, so the routing table stays a
// compile-time-checked switch rather than open-ended string branching.
type FileKind int

// Supported file kinds.
const (
	// KindUnsupported is any extension outside the routing table.
	KindUnsupported FileKind = iota

	// KindImage covers .png, .jpg and .jpeg.
	KindImage

	// KindPlainText covers .txt.
	KindPlainText

	// KindDOCX covers .docx.
	KindDOCX

	// KindPDF covers .pdf.
	KindPDF
)

// KindForName routes a filename to its kind by extension, case-insensitive.
// Routing never inspects content, so a renamed file is misrouted.
func KindForName(name string) FileKind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return KindImage
	case ".txt":
		return KindPlainText
	case ".docx":
		return KindDOCX
	case ".pdf":
		return KindPDF
	default:
		return KindUnsupported
	}
}

// Kind returns the routing kind for this file.
func (f UploadedFile) Kind() FileKind {
	return KindForName(f.Name)
}

// String returns a human-readable kind name.
func (k FileKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindPlainText:
		return "text"
	case KindDOCX:
		return "docx"
	case KindPDF:
		return "pdf"
	default:
		return "unsupported"
	}
}

// SupportedExtensions returns the extensions the dispatcher accepts.
func SupportedExtensions() []string {
	return []string{".txt", ".pdf", ".docx", ".png", ".jpg", ".jpeg"}
}
