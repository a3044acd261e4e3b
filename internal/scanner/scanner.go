// Package scanner implements the document scanning state machine
// (spec.md §4.1): validate, OCR, extract, audit, fuse confidence.
package scanner

import (
	"context"
	"math"

	"github.com/rezonia/docscan/internal/hallucination"
	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/provider/extract"
	"github.com/rezonia/docscan/internal/provider/ocr"
	"github.com/rezonia/docscan/internal/schema"
)

// Scanner orchestrates a single document end-to-end for one document
// type. CheckScanner and ReceiptScanner are both plain instantiations of
// scanner with a different ScanType, Extractor, and Detector — they
// differ only in what they compose, never in the algorithm.
type Scanner interface {
	ProcessDocument(ctx context.Context, doc model.Document) (model.ScanResult, error)
	ProcessDocuments(ctx context.Context, docs []model.Document) ([]model.ScanResult, error)
}

// scanner is the shared implementation behind every document type.
type scanner struct {
	scanType  model.ScanType
	ocr       ocr.Provider
	extractor extract.Extractor
	detector  hallucination.Detector
}

// NewCheckScanner composes a Scanner for Checks.
func NewCheckScanner(ocrProvider ocr.Provider, extractor extract.Extractor) Scanner {
	return &scanner{
		scanType:  model.ScanTypeCheck,
		ocr:       ocrProvider,
		extractor: extractor,
		detector:  hallucination.NewCheckDetector(),
	}
}

// NewReceiptScanner composes a Scanner for Receipts.
func NewReceiptScanner(ocrProvider ocr.Provider, extractor extract.Extractor) Scanner {
	return &scanner{
		scanType:  model.ScanTypeReceipt,
		ocr:       ocrProvider,
		extractor: extractor,
		detector:  hallucination.NewReceiptDetector(),
	}
}

// ProcessDocument runs the full state machine against a single
// document: validate, OCR, build the extraction request, extract,
// audit, fuse confidence.
func (s *scanner) ProcessDocument(ctx context.Context, doc model.Document) (model.ScanResult, error) {
	if err := schema.ValidateDocument(doc); err != nil {
		return model.ScanResult{}, err
	}

	pages, err := s.ocr.ProcessDocuments(ctx, []model.Document{doc})
	if err != nil {
		return model.ScanResult{}, err
	}
	if len(pages) == 0 || len(pages[0]) == 0 {
		return model.ScanResult{}, model.NewOCRError(model.OCRErrorPermanent, "OCR returned no pages", nil)
	}
	firstPage := pages[0][0]

	extraction, err := s.extractor.Extract(ctx, model.ExtractionRequest{
		Markdown: firstPage.Text,
		Schema:   s.scanType,
	})
	if err != nil {
		return model.ScanResult{}, err
	}

	s.detector.Detect(extraction.JSON)

	extractionConfidence := round2(postAuditConfidence(extraction.JSON))
	overall := fuseConfidence(firstPage.Confidence, extractionConfidence)

	return model.ScanResult{
		JSON:                 extraction.JSON,
		RawText:              firstPage.Text,
		OCRConfidence:        firstPage.Confidence,
		ExtractionConfidence: extractionConfidence,
		OverallConfidence:    overall,
	}, nil
}

// ProcessDocuments applies ProcessDocument sequentially, returning the
// first error encountered (spec.md §4.1's no-partial-success batch
// semantics) instead of a partial slice of results.
func (s *scanner) ProcessDocuments(ctx context.Context, docs []model.Document) ([]model.ScanResult, error) {
	results := make([]model.ScanResult, 0, len(docs))
	for _, doc := range docs {
		result, err := s.ProcessDocument(ctx, doc)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// postAuditConfidence reads the confidence the detector left on the
// extracted object, never the pre-audit value the extractor reported
// (spec.md §4.1 step 6, the scanner's single most important contract).
func postAuditConfidence(v any) float64 {
	switch obj := v.(type) {
	case *model.Check:
		return obj.Confidence
	case *model.Receipt:
		return obj.Confidence
	default:
		return 0
	}
}

// fuseConfidence implements the canonical blend: extraction is weighted
// higher than OCR because structural faithfulness dominates user-visible
// quality (spec.md §4.1).
func fuseConfidence(ocrConfidence, extractionConfidence float64) float64 {
	overall := 0.4*ocrConfidence + 0.6*extractionConfidence
	overall = math.Max(0, math.Min(1, overall))
	return round2(overall)
}

// round2 rounds to two decimal places, the precision spec.md §6 requires
// for every confidence value in the response (ocr, extraction, overall).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
