package utils

import (
	"context"
	"errors"
	"time"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

func (cfg RetryConfig) withDefaults() RetryConfig {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Millisecond * 100
	}
	return cfg
}

// Retry calls fn until it succeeds, the attempts are exhausted or ctx is done.
// Errors matching one of permanent are returned immediately.
func Retry(ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) error, permanent ...error) error {
	return RetryIf(ctx, cfg, fn, func(err error) bool {
		return !isPermanent(err, permanent)
	})
}

// RetryIf is Retry that repeats fn only while retryable reports true for its error.
func RetryIf(ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) error, retryable func(error) bool) error {
	cfg = cfg.withDefaults()

	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !retryable(err) || attempt == cfg.MaxAttempts {
			return err
		}

		if sleepErr := Sleep(ctx, Backoff(cfg, attempt-1)); sleepErr != nil {
			return errors.Join(err, sleepErr)
		}
	}
	return err
}

// Backoff returns the delay before the retry that follows the given number of failed retries:
// InitialDelay for 0, then growing by Multiplier up to MaxDelay.
func Backoff(cfg RetryConfig, retries int) time.Duration {
	cfg = cfg.withDefaults()

	delay := cfg.InitialDelay
	for range max(retries, 0) {
		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			return cfg.MaxDelay
		}
	}
	return delay
}

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
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

func isPermanent(err error, permanent []error) bool {
	for _, p := range permanent {
		if errors.Is(err, p) {
			return true
		}
	}
	return false
}
