package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdeskhq/helpdesk-go/pkg/retry"
)

func TestDo_FirstAttemptSucceeds(t *testing.T) {
	t.Parallel()

	calls := 0
	result, err := retry.Do(context.Background(), retry.Policy{MaxAttempts: 3}, func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	errFlaky := errors.New("flaky")
	calls := 0
	result, err := retry.Do(context.Background(), retry.Policy{
		MaxAttempts: 3,
		Backoff:     retry.Fixed{Interval: time.Millisecond},
	}, func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errFlaky
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, calls)
}

func TestDo_Exhaustion(t *testing.T) {
	t.Parallel()

	errDown := errors.New("down")
	calls := 0
	_, err := retry.Do(context.Background(), retry.Policy{
		MaxAttempts: 3,
		Backoff:     retry.Fixed{Interval: time.Millisecond},
	}, func(ctx context.Context) (int, error) {
		calls++
		return 0, errDown
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, retry.ErrAttemptsExhausted)
	assert.ErrorIs(t, err, errDown)
	assert.Equal(t, 3, calls)
}

func TestDo_NonRetryableAbortsImmediately(t *testing.T) {
	t.Parallel()

	errRetryable := errors.New("retryable")
	errFatal := errors.New("fatal")

	calls := 0
	_, err := retry.Do(context.Background(), retry.Policy{
		MaxAttempts: 5,
		Backoff:     retry.Fixed{Interval: time.Millisecond},
		RetryIf:     func(err error) bool { return errors.Is(err, errRetryable) },
	}, func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errRetryable
		}
		return 0, errFatal
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errFatal)
	assert.NotErrorIs(t, err, retry.ErrAttemptsExhausted)
	assert.Equal(t, 2, calls)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := retry.Do(ctx, retry.Policy{
			MaxAttempts: 3,
			Backoff:     retry.Fixed{Interval: time.Hour},
		}, func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("boom")
		})
		assert.ErrorIs(t, err, context.Canceled)
	}()

	// Give the first attempt time to fail and enter the backoff sleep.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("retry loop did not observe cancellation")
	}
	assert.Equal(t, 1, calls)
}

func TestDo_ZeroAttemptsTreatedAsOne(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := retry.Do(context.Background(), retry.Policy{}, func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("nope")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
