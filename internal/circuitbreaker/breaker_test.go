package circuitbreaker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/docscan/internal/circuitbreaker"
)

func TestBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	cfg := circuitbreaker.DefaultConfig("ocr")
	cfg.MaxFailures = 2
	b := circuitbreaker.New(cfg)

	boom := errors.New("boom")
	op := func(context.Context) error { return boom }

	assert.ErrorIs(t, b.Call(context.Background(), "ocr", op), boom)
	assert.ErrorIs(t, b.Call(context.Background(), "ocr", op), boom)

	err := b.Call(context.Background(), "ocr", op)
	var openErr *circuitbreaker.ErrOpen
	assert.ErrorAs(t, err, &openErr)
	assert.Equal(t, "ocr", openErr.Name)
}

func TestBreaker_PassesThroughSuccess(t *testing.T) {
	b := circuitbreaker.New(circuitbreaker.DefaultConfig("extract"))
	err := b.Call(context.Background(), "extract", func(context.Context) error { return nil })
	assert.NoError(t, err)
}
