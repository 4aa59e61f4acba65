package pages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"incubator/internal/incubator/metrics"
	"incubator/internal/prefix"
	"incubator/pkg/platform/sentinel"
)

// BreakerConfig configures the page index circuit breaker.
type BreakerConfig struct {
	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32
	// Interval is the cyclic period of the closed state for clearing counts.
	Interval time.Duration
	// Timeout is how long the breaker stays open.
	Timeout time.Duration
	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32
}

// DefaultBreakerConfig returns the defaults used by the server.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      3,
		Interval:         10 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// Breaker isolates callers from a failing index. While open it fails fast
// with an error wrapping sentinel.ErrUnavailable.
type Breaker struct {
	next Index
	cb   *gobreaker.CircuitBreaker[any]
}

// NewBreaker wraps next in a circuit breaker named name.
func NewBreaker(name string, next Index, cfg BreakerConfig, logger *slog.Logger, m *metrics.Metrics) *Breaker {
	if logger == nil {
		logger = slog.Default()
	}
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			// Cancelled requests say nothing about backend health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("page index circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
			m.SetBreakerOpen(name, to == gobreaker.StateOpen)
		},
	}
	return &Breaker{next: next, cb: gobreaker.NewCircuitBreaker[any](settings)}
}

func (b *Breaker) Exists(ctx context.Context, p prefix.Title) (bool, error) {
	v, err := b.execute(func() (any, error) {
		return b.next.Exists(ctx, p)
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (b *Breaker) ExistingAmong(ctx context.Context, namespace int, titles []string) (map[string]bool, error) {
	v, err := b.execute(func() (any, error) {
		return ExistingAmong(ctx, b.next, namespace, titles)
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]bool), nil
}

func (b *Breaker) execute(fn func() (any, error)) (any, error) {
	v, err := b.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// State returns the breaker state name ("closed", "half-open", "open").
func (b *Breaker) State() string {
	return b.cb.State().String()
}
