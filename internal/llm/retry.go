package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier decorates a Provider with exponential backoff. Schema failures
// get a single regeneration attempt; everything retryable gets the full
// attempt budget.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) {
			return nil, err
		}

		// A schema-invalid batch is usually the model's fault, not
		// the network's. One regeneration, then give up.
		var invResp *ErrInvalidResponse
		if errors.As(err, &invResp) {
			if invalidRetried {
				return nil, err
			}
			invalidRetried = true
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retrier) ModelID() string {
	return r.inner.ModelID()
}

// wait picks the sleep before the next attempt. A server-provided
// Retry-After wins over the computed backoff.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	w := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	w = math.Min(w, float64(r.cfg.MaxWait))

	// ±20% jitter keeps parallel batch workers from retrying in step.
	w += w * 0.2 * (2*rand.Float64() - 1)

	return time.Duration(math.Max(w, 0))
}
