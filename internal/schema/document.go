package schema

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	docmodel "github.com/rezonia/docscan/internal/model"
)

var pdfConfig = model.NewDefaultConfiguration()

// MaxDocumentBytes bounds a single upload; larger files are rejected
// before any provider call is made.
const MaxDocumentBytes = 20 * 1024 * 1024 // 20MiB

// MaxPDFPages bounds how many pages a PDF document may have. A
// photographed Check or Receipt is one or two pages; anything larger is
// almost certainly the wrong kind of document.
const MaxPDFPages = 5

// ValidateDocument checks a Document's size, declared type, and (for
// PDFs) structural well-formedness, before it reaches an OCR provider.
func ValidateDocument(d docmodel.Document) error {
	if len(d.Content) == 0 {
		return docmodel.NewValidationError("content", nil, "required", "document has no content")
	}
	if len(d.Content) > MaxDocumentBytes {
		return docmodel.NewValidationError("content", len(d.Content), "max_size", fmt.Sprintf("document exceeds %d bytes", MaxDocumentBytes))
	}
	if !d.Type.Supported() {
		return docmodel.NewValidationError("type", d.Type, "oneof", "unsupported document type")
	}

	if d.Type == docmodel.DocumentTypePDF {
		if err := validatePDFStructure(d.Content); err != nil {
			return err
		}
	}
	return nil
}

// validatePDFStructure confirms the buffer parses as a well-formed PDF
// with a plausible page count, without attempting to extract any text
// from it — extraction is the OCR provider's job.
func validatePDFStructure(content []byte) error {
	if err := api.Validate(bytes.NewReader(content), pdfConfig); err != nil {
		return docmodel.NewValidationError("content", nil, "pdf_malformed", fmt.Sprintf("not a valid PDF: %v", err))
	}

	pages, err := api.PageCount(bytes.NewReader(content), pdfConfig)
	if err != nil {
		return docmodel.NewValidationError("content", nil, "pdf_malformed", fmt.Sprintf("could not read page count: %v", err))
	}
	if pages == 0 {
		return docmodel.NewValidationError("content", nil, "pdf_empty", "PDF has no pages")
	}
	if pages > MaxPDFPages {
		return docmodel.NewValidationError("content", pages, "max_pages", fmt.Sprintf("PDF has %d pages, max is %d", pages, MaxPDFPages))
	}
	return nil
}
