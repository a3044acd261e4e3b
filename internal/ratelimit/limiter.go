// Package ratelimit provides a client-side token bucket over a remote
// provider call, so a burst of concurrent requests doesn't itself trip
// the provider's own rate limiting.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter wraps golang.org/x/time/rate.Limiter with a ctx-bounded Wait,
// so a caller's deadline governs how long a request will queue for a
// token before giving up.
type Limiter struct {
	limiter *rate.Limiter
}

// New constructs a Limiter allowing ratePerSecond sustained requests per
// second, with a burst capacity of burst.
func New(ratePerSecond float64, burst int) *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst)}
}

// Wait blocks until a token is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
