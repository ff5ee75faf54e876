package catalog

import (
	"context"
	"time"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/logging"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
)

// RetryPolicy controls WithRetry.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// Backoff is the fixed delay between attempts.
	Backoff time.Duration
	// Logger receives one entry per failed attempt. Nil discards them.
	Logger *logging.Logger
}

// retryingFetcher retries retryable fetch errors.
type retryingFetcher struct {
	next   Fetcher
	policy RetryPolicy
	sleep  func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps next so that retryable errors (see errors.IsRetryable) are
// attempted again up to policy.MaxAttempts times. A policy with fewer than
// two attempts returns next unchanged.
func WithRetry(next Fetcher, policy RetryPolicy) Fetcher {
	if policy.MaxAttempts < 2 {
		return next
	}
	if policy.Logger == nil {
		policy.Logger = logging.NopLogger()
	}
	return &retryingFetcher{next: next, policy: policy, sleep: sleepCtx}
}

// FetchOffers implements Fetcher.
func (r *retryingFetcher) FetchOffers(ctx context.Context, postcode, area string) ([]skip.Offer, error) {
	var lastErr error
	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		offers, err := r.next.FetchOffers(ctx, postcode, area)
		if err == nil {
			return offers, nil
		}
		lastErr = err

		if !errors.IsRetryable(err) || attempt == r.policy.MaxAttempts {
			break
		}
		r.policy.Logger.Warn("retrying catalog fetch",
			"attempt", attempt,
			"max_attempts", r.policy.MaxAttempts,
			"error", err.Error())

		if err := r.sleep(ctx, r.policy.Backoff); err != nil {
			break
		}
	}
	return nil, lastErr
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
