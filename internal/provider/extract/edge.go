package extract

import (
	"context"

	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/retry"
)

// EdgeExtractor calls an edge-hosted LLM binding reachable over a local
// or private network. It retries transient failures but has no circuit
// breaker or rate limiter of its own: an edge binding is a single
// deployment-local dependency, not a shared rate-limited vendor quota.
type EdgeExtractor struct {
	client client
}

// NewEdgeExtractor constructs an EdgeExtractor against baseURL, pinned
// to model.
func NewEdgeExtractor(baseURL, apiKey, model string) *EdgeExtractor {
	return &EdgeExtractor{client: newClient(baseURL, apiKey, model)}
}

// Extract implements Extractor.
func (e *EdgeExtractor) Extract(ctx context.Context, req model.ExtractionRequest) (model.ExtractionResult, error) {
	var result model.ExtractionResult
	err := retry.Do(ctx, func() error {
		r, err := e.client.extract(ctx, req)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return model.ExtractionResult{}, err
	}
	return result, nil
}
