package scanner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/scanner"
)

type fakeOCR struct {
	page model.OCRPage
	err  error
}

func (f *fakeOCR) ProcessDocuments(ctx context.Context, docs []model.Document) ([][]model.OCRPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	pages := make([][]model.OCRPage, len(docs))
	for i := range docs {
		pages[i] = []model.OCRPage{f.page}
	}
	return pages, nil
}

type fakeExtractor struct {
	result model.ExtractionResult
	err    error
}

func (f *fakeExtractor) Extract(ctx context.Context, req model.ExtractionRequest) (model.ExtractionResult, error) {
	return f.result, f.err
}

func validDocument() model.Document {
	return model.Document{
		Content:  []byte{0x89, 0x50, 0x4E, 0x47},
		Type:     model.DocumentTypeImage,
		MimeType: "image/png",
	}
}

// S2 from spec.md §8: a minimal/blank-looking image whose extractor
// fabricates two dummy-matching fields; the scanner must surface the
// post-audit confidence, not the extractor's original value.
func TestProcessDocument_AntiHallucination(t *testing.T) {
	check := &model.Check{
		CheckNumber: "1234",
		Payee:       "John Doe",
		Confidence:  0.8,
	}
	s := scanner.NewCheckScanner(
		&fakeOCR{page: model.OCRPage{Text: "", Confidence: 0.2}},
		&fakeExtractor{result: model.ExtractionResult{JSON: check, Confidence: 0.8}},
	)

	result, err := s.ProcessDocument(context.Background(), validDocument())
	require.NoError(t, err)

	got := result.JSON.(*model.Check)
	assert.False(t, got.Valid())
	assert.InDelta(t, 0.24, result.ExtractionConfidence, 1e-9)
	assert.Equal(t, 0.22, result.OverallConfidence) // round2(0.4*0.2 + 0.6*0.24)
}

func TestProcessDocument_ValidReceiptHighConfidence(t *testing.T) {
	receipt := &model.Receipt{
		Confidence: 0.95,
		Merchant:   &model.Merchant{Name: "Trattoria Italia"},
	}
	s := scanner.NewReceiptScanner(
		&fakeOCR{page: model.OCRPage{Text: "menu items...", Confidence: 0.9}},
		&fakeExtractor{result: model.ExtractionResult{JSON: receipt, Confidence: 0.95}},
	)

	result, err := s.ProcessDocument(context.Background(), validDocument())
	require.NoError(t, err)

	got := result.JSON.(*model.Receipt)
	assert.True(t, got.Valid())
	assert.GreaterOrEqual(t, result.OverallConfidence, 0.8)
}

func TestProcessDocument_RejectsInvalidDocument(t *testing.T) {
	s := scanner.NewCheckScanner(&fakeOCR{}, &fakeExtractor{})
	_, err := s.ProcessDocument(context.Background(), model.Document{})
	assert.Error(t, err)
}

func TestProcessDocument_PropagatesOCRError(t *testing.T) {
	ocrErr := model.NewOCRError(model.OCRErrorPermanent, "upstream rejected", nil)
	s := scanner.NewCheckScanner(&fakeOCR{err: ocrErr}, &fakeExtractor{})
	_, err := s.ProcessDocument(context.Background(), validDocument())
	assert.ErrorIs(t, err, ocrErr)
}

func TestProcessDocuments_FailFastNoPartialResults(t *testing.T) {
	extractErr := model.NewExtractionError(model.ExtractionErrorParse, "not json", nil)
	calls := 0
	s := scanner.NewCheckScanner(
		&fakeOCR{page: model.OCRPage{Text: "text", Confidence: 0.9}},
		extractorFunc(func(ctx context.Context, req model.ExtractionRequest) (model.ExtractionResult, error) {
			calls++
			if calls == 2 {
				return model.ExtractionResult{}, extractErr
			}
			return model.ExtractionResult{JSON: &model.Check{Confidence: 0.9}, Confidence: 0.9}, nil
		}),
	)

	docs := []model.Document{validDocument(), validDocument(), validDocument()}
	results, err := s.ProcessDocuments(context.Background(), docs)

	assert.Nil(t, results)
	assert.ErrorIs(t, err, extractErr)
	assert.Equal(t, 2, calls)
}

type extractorFunc func(ctx context.Context, req model.ExtractionRequest) (model.ExtractionResult, error)

func (f extractorFunc) Extract(ctx context.Context, req model.ExtractionRequest) (model.ExtractionResult, error) {
	return f(ctx, req)
}
