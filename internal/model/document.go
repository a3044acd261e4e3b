// Package model declares the value types that flow through the scanning
// pipeline: documents in, OCR pages and extraction results through the
// middle, typed Check/Receipt records and a ScanResult out.
package model

// DocumentType identifies the wire format of a Document.
type DocumentType string

const (
	DocumentTypeImage DocumentType = "image"
	DocumentTypePDF   DocumentType = "pdf"
)

// Supported reports whether t is a DocumentType the pipeline accepts.
func (t DocumentType) Supported() bool {
	switch t {
	case DocumentTypeImage, DocumentTypePDF:
		return true
	default:
		return false
	}
}

// Document is the raw input to the scanning pipeline: a byte buffer plus
// the metadata needed to interpret it. It is owned by the scanner for the
// lifetime of a single request and carries no identity beyond that.
type Document struct {
	Content  []byte
	Type     DocumentType
	Name     string
	MimeType string
}

// BoundingBox describes the pixel dimensions an OCRPage was produced from.
type BoundingBox struct {
	Width  int
	Height int
}

// OCRPage is one page of text recognized from a Document. A single OCR
// call returns an ordered, non-empty sequence of pages; pages are
// immutable once returned by the provider.
type OCRPage struct {
	Text        string
	Confidence  float64
	BoundingBox *BoundingBox
}
