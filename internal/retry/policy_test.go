package retry_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/retry"
)

type statusError struct{ code int }

func (e statusError) Error() string { return http.StatusText(e.code) }
func (e statusError) StatusCode() int { return e.code }

func TestIsRetryable_TransientModelErrors(t *testing.T) {
	assert.True(t, retry.IsRetryable(model.NewOCRError(model.OCRErrorTransient, "timeout", nil)))
	assert.False(t, retry.IsRetryable(model.NewOCRError(model.OCRErrorPermanent, "bad request", nil)))
	assert.True(t, retry.IsRetryable(model.NewExtractionError(model.ExtractionErrorTransient, "upstream 503", nil)))
	assert.False(t, retry.IsRetryable(model.NewExtractionError(model.ExtractionErrorSchema, "invalid json", nil)))
}

func TestIsRetryable_HTTPStatus(t *testing.T) {
	assert.True(t, retry.IsRetryable(statusError{code: http.StatusTooManyRequests}))
	assert.True(t, retry.IsRetryable(statusError{code: http.StatusServiceUnavailable}))
	assert.False(t, retry.IsRetryable(statusError{code: http.StatusBadRequest}))
	assert.False(t, retry.IsRetryable(statusError{code: http.StatusUnauthorized}))
}

func TestIsRetryable_Context(t *testing.T) {
	assert.True(t, retry.IsRetryable(context.DeadlineExceeded))
	assert.False(t, retry.IsRetryable(context.Canceled))
	assert.False(t, retry.IsRetryable(nil))
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := retry.Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return model.NewOCRError(model.OCRErrorTransient, "flaky", nil)
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	attempts := 0
	permanent := model.NewOCRError(model.OCRErrorPermanent, "bad input", nil)
	err := retry.Do(context.Background(), func() error {
		attempts++
		return permanent
	})
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.True(t, errors.Is(err, permanent) || errors.As(err, &permanent))
}

func TestDo_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := retry.Do(ctx, func() error {
		return model.NewOCRError(model.OCRErrorTransient, "always flaky", nil)
	})
	assert.Error(t, err)
}
