package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrAttemptsExhausted wraps the last error once every attempt allowed by the
// policy has failed.
var ErrAttemptsExhausted = errors.New("retry: attempts exhausted")

// Policy describes a bounded retry loop as a value: how many total attempts
// to make, how long to wait between them, and which errors are worth another
// try. A zero RetryIf retries every error.
type Policy struct {
	// MaxAttempts is the total number of attempts including the first one.
	// Values below 1 are treated as 1 (no retries).
	MaxAttempts int

	// Backoff computes the delay before each retry.
	Backoff BackoffStrategy

	// RetryIf reports whether the error from an attempt is retryable.
	// Non-retryable errors abort the loop and are returned as-is.
	RetryIf func(error) bool
}

// Do runs fn under the policy and returns its first successful result.
// Backoff sleeps respect ctx cancellation. A non-retryable error is returned
// unchanged; exhaustion returns the last error wrapped in ErrAttemptsExhausted.
func Do[T any](ctx context.Context, policy Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	backoff := policy.Backoff
	if backoff == nil {
		backoff = Fixed{Interval: time.Second}
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(backoff.NextInterval(attempt - 1)):
			}
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if policy.RetryIf != nil && !policy.RetryIf(err) {
			return zero, err
		}
	}

	return zero, fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, attempts, lastErr)
}
