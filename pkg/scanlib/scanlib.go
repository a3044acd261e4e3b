// Package scanlib provides a public, embeddable API over the document
// scanning core: construct a Scanner from a Config, and call Scan or
// ScanBatch to run a photographed check or receipt through the OCR and
// extraction pipeline.
//
// Example usage:
//
//	cfg := scanlib.DefaultConfig()
//	cfg.OCRAPIKey = os.Getenv("OCR_API_KEY")
//	cfg.OCRModel = "vision-model"
//	cfg.ExtractorAPIKey = os.Getenv("EXTRACTOR_API_KEY")
//	cfg.ExtractionModel = "extraction-model"
//	scanner, err := scanlib.New(scanlib.ScanTypeReceipt, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := scanner.Scan(ctx, scanlib.Document{Content: data, Type: scanlib.DocumentTypeImage, MimeType: "image/jpeg"})
package scanlib

import (
	"context"

	"github.com/rezonia/docscan/internal/factory"
	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/scanner"
)

// Re-export core types for public API.
type (
	Check               = model.Check
	Receipt             = model.Receipt
	Document            = model.Document
	DocumentType        = model.DocumentType
	ScanType            = model.ScanType
	ScanResult          = model.ScanResult
	ExtractionRequest   = model.ExtractionRequest
	ExtractionResult    = model.ExtractionResult
	ValidationError     = model.ValidationError
	OCRError            = model.OCRError
	ExtractionError     = model.ExtractionError
	ConfigError         = model.ConfigError
	CancelledError      = model.CancelledError
)

// Re-export document and scan type constants.
const (
	DocumentTypeImage = model.DocumentTypeImage
	DocumentTypePDF   = model.DocumentTypePDF

	ScanTypeCheck   = model.ScanTypeCheck
	ScanTypeReceipt = model.ScanTypeReceipt
)

// Config configures the OCR provider, the extractor, and the rate limits
// a Scanner is built with. Its MaxDocumentBytes field is not consulted
// when a Scanner is built: every document is checked against the fixed
// 20 MiB ceiling of the internal document validator.
type Config = factory.Config

// ExtractorKind selects between a remote, vendor-hosted extraction
// model and a privately hosted edge binding.
type ExtractorKind = factory.ExtractorKind

const (
	ExtractorKindRemote = factory.ExtractorKindRemote
	ExtractorKindEdge   = factory.ExtractorKindEdge
)

// DefaultConfig returns a Config with the library's default rate limits
// and document size ceiling; callers still need to set the OCR and
// extractor credentials and model identifiers before calling New.
func DefaultConfig() Config {
	return factory.DefaultConfig()
}

// Scanner runs one document type's full pipeline: document validation,
// OCR, structured extraction, hallucination audit, and confidence
// fusion.
type Scanner struct {
	inner scanner.Scanner
}

// New builds a Scanner for scanType from cfg. Construction validates
// cfg eagerly and performs no network I/O.
func New(scanType ScanType, cfg Config) (*Scanner, error) {
	inner, err := factory.NewScanner(scanType, cfg)
	if err != nil {
		return nil, err
	}
	return &Scanner{inner: inner}, nil
}

// Scan runs the pipeline on a single document.
func (s *Scanner) Scan(ctx context.Context, doc Document) (ScanResult, error) {
	return s.inner.ProcessDocument(ctx, doc)
}

// ScanBatch runs the pipeline over docs sequentially, stopping at the
// first failure. A failure mid-batch returns a nil slice and the
// originating error rather than a partial result set.
func (s *Scanner) ScanBatch(ctx context.Context, docs []Document) ([]ScanResult, error) {
	return s.inner.ProcessDocuments(ctx, docs)
}
