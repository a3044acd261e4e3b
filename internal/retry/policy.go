// Package retry wraps cenkalti/backoff/v4 with the exponential policy
// and error classification spec.md §4.6 names for OCR and extraction
// provider calls: 500ms initial delay, 8s cap, ×2.0 multiplier, 30s
// total elapsed budget, retrying only transient failures.
package retry

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/rezonia/docscan/internal/model"
)

const (
	initialInterval = 500 * time.Millisecond
	maxInterval     = 8 * time.Second
	multiplier      = 2.0
	maxElapsedTime  = 30 * time.Second
)

// newBackOff builds a fresh exponential backoff bounded by maxElapsedTime,
// wrapped with ctx so a caller's own deadline stops retries early.
func newBackOff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialInterval
	b.MaxInterval = maxInterval
	b.Multiplier = multiplier
	b.MaxElapsedTime = maxElapsedTime
	return backoff.WithContext(b, ctx)
}

// Do runs op, retrying on transient failures per IsRetryable, until it
// succeeds, a non-retryable error occurs, or the policy's elapsed-time
// budget (or ctx) is exhausted.
func Do(ctx context.Context, op func() error) error {
	wrapped := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(wrapped, newBackOff(ctx))
}

// IsRetryable classifies an error as worth another attempt: HTTP 429 and
// 5xx, network timeouts, and connection failures are retryable; every
// other 4xx and any already-categorized permanent model error is not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var ocrErr *model.OCRError
	if errors.As(err, &ocrErr) {
		return ocrErr.Kind == model.OCRErrorTransient
	}

	var extractErr *model.ExtractionError
	if errors.As(err, &extractErr) {
		return extractErr.Kind == model.ExtractionErrorTransient
	}

	var statusErr interface{ StatusCode() int }
	if errors.As(err, &statusErr) {
		return isRetryableStatus(statusErr.StatusCode())
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	return false
}

func isRetryableStatus(code int) bool {
	if code == http.StatusTooManyRequests {
		return true
	}
	return code >= 500 && code < 600
}
