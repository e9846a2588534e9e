package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// RetryPolicy is a bounded, fixed-delay retry budget. There is no growth and no jitter.
type RetryPolicy struct {
	Label       string
	MaxAttempts int
	Delay       time.Duration
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

type SleepFunc func(ctx context.Context, d time.Duration) error

type Retrier struct {
	logger *zap.Logger
	sleep  SleepFunc
}

func NewRetrier(logger *zap.Logger, sleep SleepFunc) *Retrier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sleep == nil {
		sleep = sleepContext
	}

	return &Retrier{logger: logger, sleep: sleep}
}

// Retry invokes fn until it succeeds or the policy is exhausted. The last error is returned as is.
func Retry[T any](ctx context.Context, r *Retrier, policy RetryPolicy, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	maxAttempts := policy.attempts()

	for attempt := 1; ; attempt++ {
		r.logger.Debug("attempt",
			zap.String("label", policy.Label),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts))

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		r.logger.Warn("attempt failed",
			zap.String("label", policy.Label),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts),
			zap.Error(err))

		if attempt >= maxAttempts {
			return zero, err
		}

		r.logger.Info("retrying",
			zap.String("label", policy.Label),
			zap.Duration("delay", policy.Delay))
		if sleepErr := r.sleep(ctx, policy.Delay); sleepErr != nil {
			return zero, errors.Join(err, sleepErr)
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
