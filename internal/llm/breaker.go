package llm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// BreakerProvider stops calling a failing provider for a cooldown period.
//
// After Threshold consecutive failures the circuit opens and every call
// fails fast with ErrCircuitOpen. Once Cooldown has elapsed a single trial
// call is let through (half-open); its success closes the circuit, its
// failure opens it again for another cooldown.
type BreakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker[*Response]
}

// WithCircuitBreaker wraps a Provider with a circuit breaker. A zero
// Threshold returns p unchanged.
func WithCircuitBreaker(p Provider, cfg BreakerConfig, log zerolog.Logger) Provider {
	if cfg.Threshold <= 0 {
		return p
	}
	return newBreaker(p, cfg, log)
}

func newBreaker(p Provider, cfg BreakerConfig, log zerolog.Logger) *BreakerProvider {
	threshold := uint32(cfg.Threshold)
	cb := gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        p.ModelID(),
		MaxRequests: 1,
		Timeout:     max(cfg.Cooldown, cooldownFloor),
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= threshold
		},
		// The caller walking away says nothing about provider health.
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				log.Warn().
					Str("model", name).
					Dur("cooldown", cfg.Cooldown).
					Msg("llm circuit opened")
			case gobreaker.StateClosed:
				log.Info().Str("model", name).Msg("llm circuit closed")
			default:
				log.Debug().Str("model", name).Str("from", from.String()).Msg("llm circuit half-open")
			}
		},
	})
	return &BreakerProvider{inner: p, cb: cb}
}

func (b *BreakerProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := b.cb.Execute(func() (*Response, error) {
		return b.inner.Generate(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, ErrCircuitOpen
	}
	return resp, err
}

func (b *BreakerProvider) ModelID() string {
	return b.inner.ModelID()
}

// State returns the breaker state as "closed", "open" or "half-open".
func (b *BreakerProvider) State() string {
	return b.cb.State().String()
}

// cooldownFloor keeps a zero Cooldown from falling back to gobreaker's
// one-minute default.
const cooldownFloor = time.Millisecond
