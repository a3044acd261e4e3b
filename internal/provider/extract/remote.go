package extract

import (
	"context"

	"github.com/rezonia/docscan/internal/circuitbreaker"
	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/ratelimit"
	"github.com/rezonia/docscan/internal/retry"
)

// RemoteExtractor calls a hosted vendor's chat completion API in
// JSON-object mode. It is guarded by the same retry/breaker/rate-limit
// stack as the OCR provider, since it shares the same network-failure
// modes.
type RemoteExtractor struct {
	client  client
	breaker *circuitbreaker.Breaker
	limiter *ratelimit.Limiter
}

// NewRemoteExtractor constructs a RemoteExtractor against baseURL,
// pinned to model.
func NewRemoteExtractor(baseURL, apiKey, model string, breaker *circuitbreaker.Breaker, limiter *ratelimit.Limiter) *RemoteExtractor {
	return &RemoteExtractor{
		client:  newClient(baseURL, apiKey, model),
		breaker: breaker,
		limiter: limiter,
	}
}

// Extract implements Extractor.
func (e *RemoteExtractor) Extract(ctx context.Context, req model.ExtractionRequest) (model.ExtractionResult, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return model.ExtractionResult{}, model.NewCancelledError("extraction rate limit wait", err)
	}

	var result model.ExtractionResult
	err := e.breaker.Call(ctx, "extract", func(ctx context.Context) error {
		return retry.Do(ctx, func() error {
			r, err := e.client.extract(ctx, req)
			if err != nil {
				return err
			}
			result = r
			return nil
		})
	})
	if err != nil {
		return model.ExtractionResult{}, err
	}
	return result, nil
}
