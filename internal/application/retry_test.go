package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryReturnsSuccessAfterTransientFailures(t *testing.T) {
	var slept []time.Duration
	retrier := NewRetrier(nil, func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	})

	const failures = 2
	calls := 0
	got, err := Retry(context.Background(), retrier, RetryPolicy{Label: "upload", MaxAttempts: failures + 2, Delay: 10 * time.Second}, func(context.Context) (string, error) {
		calls++
		if calls <= failures {
			return "", errors.New("rate limited")
		}
		return "QmHash", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "QmHash", got)
	assert.Equal(t, failures+1, calls)
	assert.Equal(t, []time.Duration{10 * time.Second, 10 * time.Second}, slept)
}

func TestRetrySurfacesFinalErrorUnchanged(t *testing.T) {
	retrier := NewRetrier(nil, noSleep)
	finalErr := errors.New("provider outage 3")

	calls := 0
	_, err := Retry(context.Background(), retrier, RetryPolicy{Label: "render", MaxAttempts: 3}, func(context.Context) (int, error) {
		calls++
		if calls == 3 {
			return 0, finalErr
		}
		return 0, errors.New("provider outage")
	})

	assert.Equal(t, 3, calls)
	assert.Same(t, finalErr, err)
}

func TestRetryDoesNotRetrySuccess(t *testing.T) {
	retrier := NewRetrier(nil, func(context.Context, time.Duration) error {
		t.Fatal("unexpected sleep")
		return nil
	})

	calls := 0
	got, err := Retry(context.Background(), retrier, RetryPolicy{MaxAttempts: 5}, func(context.Context) (int, error) {
		calls++
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)
}

func TestRetryTreatsNonPositiveAttemptsAsOne(t *testing.T) {
	retrier := NewRetrier(nil, noSleep)

	calls := 0
	_, err := Retry(context.Background(), retrier, RetryPolicy{MaxAttempts: 0}, func(context.Context) (int, error) {
		calls++
		return 0, errors.New("nope")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryStopsWhenContextCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	retrier := NewRetrier(nil, nil)
	callErr := errors.New("timeout")
	calls := 0
	_, err := Retry(ctx, retrier, RetryPolicy{MaxAttempts: 3, Delay: time.Hour}, func(context.Context) (int, error) {
		calls++
		return 0, callErr
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, callErr)
	assert.ErrorIs(t, err, context.Canceled)
}
