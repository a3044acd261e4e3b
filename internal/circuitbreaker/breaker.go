// Package circuitbreaker wraps sony/gobreaker around provider calls, so
// a run of failures against one upstream (OCR or extraction) trips open
// and fails fast instead of piling up retries against a dead dependency.
package circuitbreaker

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// Config tunes a Breaker's trip and recovery thresholds.
type Config struct {
	Name             string
	MaxFailures      uint32
	OpenTimeout      time.Duration
	HalfOpenMaxCalls uint32
}

// DefaultConfig trips after 5 consecutive failures and stays open for 30s
// before allowing a single probe call through.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxFailures:      5,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxCalls: 1,
	}
}

// Breaker guards a single upstream dependency.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// New constructs a Breaker from Config.
func New(cfg Config) *Breaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.HalfOpenMaxCalls,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
	}
	return &Breaker{cb: gobreaker.NewCircuitBreaker(settings)}
}

// ErrOpen wraps gobreaker.ErrOpenState with the breaker's name, so a
// caller's logs identify which upstream is tripped.
type ErrOpen struct {
	Name string
}

func (e *ErrOpen) Error() string {
	return fmt.Sprintf("circuit breaker %q is open", e.Name)
}

// Call runs op through the breaker. When the breaker is open, op is not
// invoked and Call returns *ErrOpen immediately.
func (b *Breaker) Call(ctx context.Context, name string, op func(context.Context) error) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, op(ctx)
	})
	if err == gobreaker.ErrOpenState {
		return &ErrOpen{Name: name}
	}
	return err
}
