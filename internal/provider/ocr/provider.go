package ocr

import (
	"context"

	"github.com/rezonia/docscan/internal/circuitbreaker"
	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/ratelimit"
	"github.com/rezonia/docscan/internal/retry"
)

// Provider turns a batch of Documents into a parallel batch of OCR page
// sequences, one sequence per document, preserving order.
type Provider interface {
	ProcessDocuments(ctx context.Context, docs []model.Document) ([][]model.OCRPage, error)
}

// RemoteProvider is the Provider backed by an OpenAI-compatible vision
// endpoint, guarded by retry, a circuit breaker, and a client-side rate
// limiter so a single slow request can't starve the others.
type RemoteProvider struct {
	client  *Client
	breaker *circuitbreaker.Breaker
	limiter *ratelimit.Limiter
}

// NewRemoteProvider wires a Client behind the shared resilience stack.
func NewRemoteProvider(client *Client, breaker *circuitbreaker.Breaker, limiter *ratelimit.Limiter) *RemoteProvider {
	return &RemoteProvider{client: client, breaker: breaker, limiter: limiter}
}

// ProcessDocuments calls Recognize once per document, sequentially and
// in order, failing the whole batch on the first error per spec.md §4.1's
// fail-fast batch semantics.
func (p *RemoteProvider) ProcessDocuments(ctx context.Context, docs []model.Document) ([][]model.OCRPage, error) {
	pages := make([][]model.OCRPage, len(docs))
	for i, doc := range docs {
		page, err := p.recognizeOne(ctx, doc)
		if err != nil {
			return nil, err
		}
		pages[i] = []model.OCRPage{page}
	}
	return pages, nil
}

func (p *RemoteProvider) recognizeOne(ctx context.Context, doc model.Document) (model.OCRPage, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return model.OCRPage{}, model.NewCancelledError("ocr rate limit wait", err)
	}

	var result recognizeResult
	err := p.breaker.Call(ctx, "ocr", func(ctx context.Context) error {
		return retry.Do(ctx, func() error {
			r, err := p.client.Recognize(ctx, doc.Content, doc.MimeType)
			if err != nil {
				return err
			}
			result = r
			return nil
		})
	})
	if err != nil {
		return model.OCRPage{}, err
	}

	return model.OCRPage{
		Text:       result.text,
		Confidence: confidenceFromFinishReason(result.finishReason, result.text),
	}, nil
}

// confidenceFromFinishReason synthesizes an OCR confidence when the
// provider doesn't return one explicitly, per spec.md §4.2: a clean stop
// with non-empty text is high confidence, truncation is low, anything
// else (content filter, error-shaped finish reason, empty text) is
// lower still.
func confidenceFromFinishReason(finishReason, text string) float64 {
	if text == "" {
		return 0.1
	}
	switch finishReason {
	case "stop":
		return 0.95
	case "length":
		return 0.5
	default:
		return 0.3
	}
}
