package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
)

// scriptedFetcher returns errs in order, then succeeds.
type scriptedFetcher struct {
	errs  []error
	calls int
}

func (f *scriptedFetcher) FetchOffers(ctx context.Context, postcode, area string) ([]skip.Offer, error) {
	f.calls++
	if f.calls <= len(f.errs) {
		return nil, f.errs[f.calls-1]
	}
	return []skip.Offer{{ID: 1, Size: 4}}, nil
}

func noSleep(ctx context.Context, d time.Duration) error { return ctx.Err() }

func newRetrying(next Fetcher, attempts int) *retryingFetcher {
	f := WithRetry(next, RetryPolicy{MaxAttempts: attempts, Backoff: time.Hour}).(*retryingFetcher)
	f.sleep = noSleep
	return f
}

func TestWithRetry_SingleAttemptIsPassthrough(t *testing.T) {
	next := &scriptedFetcher{}
	for _, attempts := range []int{0, 1} {
		if got := WithRetry(next, RetryPolicy{MaxAttempts: attempts}); got != Fetcher(next) {
			t.Errorf("WithRetry(MaxAttempts=%d) should return next unchanged", attempts)
		}
	}
}

func TestWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		errs      []error
		attempts  int
		wantCalls int
		wantErr   bool
	}{
		{
			name:      "succeeds first time",
			attempts:  3,
			wantCalls: 1,
		},
		{
			name:      "recovers after server errors",
			errs:      []error{errors.NewRemoteFetchError(503), errors.NewNetworkError(nil)},
			attempts:  3,
			wantCalls: 3,
		},
		{
			name:      "gives up after max attempts",
			errs:      []error{errors.NewRemoteFetchError(500), errors.NewRemoteFetchError(500), errors.NewRemoteFetchError(500)},
			attempts:  2,
			wantCalls: 2,
			wantErr:   true,
		},
		{
			name:      "client error is not retried",
			errs:      []error{errors.NewRemoteFetchError(404)},
			attempts:  3,
			wantCalls: 1,
			wantErr:   true,
		},
		{
			name:      "decode error is not retried",
			errs:      []error{errors.NewDecodeError("bad", nil)},
			attempts:  3,
			wantCalls: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &scriptedFetcher{errs: tt.errs}
			f := newRetrying(next, tt.attempts)

			offers, err := f.FetchOffers(context.Background(), "NR32", "Lowestoft")
			if (err != nil) != tt.wantErr {
				t.Fatalf("FetchOffers() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(offers) != 1 {
				t.Errorf("len(offers) = %d, want 1", len(offers))
			}
			if next.calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", next.calls, tt.wantCalls)
			}
		})
	}
}

func TestWithRetry_LastErrorIsReturned(t *testing.T) {
	next := &scriptedFetcher{errs: []error{errors.NewRemoteFetchError(500), errors.NewRemoteFetchError(502)}}
	f := newRetrying(next, 2)

	_, err := f.FetchOffers(context.Background(), "NR32", "Lowestoft")
	var remote *errors.RemoteFetchError
	if !errors.As(err, &remote) || remote.StatusCode != 502 {
		t.Errorf("error = %v, want the 502 from the last attempt", err)
	}
}

func TestWithRetry_StopsWhenContextDone(t *testing.T) {
	next := &scriptedFetcher{errs: []error{errors.NewRemoteFetchError(500), errors.NewRemoteFetchError(500)}}
	f := WithRetry(next, RetryPolicy{MaxAttempts: 5, Backoff: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := f.FetchOffers(ctx, "NR32", "Lowestoft")
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Error("FetchOffers() should fail after cancellation")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("FetchOffers() did not return after cancellation")
	}
	if next.calls != 1 {
		t.Errorf("calls = %d, want 1", next.calls)
	}
}

func TestSleepCtx(t *testing.T) {
	if err := sleepCtx(context.Background(), time.Millisecond); err != nil {
		t.Errorf("sleepCtx() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sleepCtx(ctx, time.Hour); err != context.Canceled {
		t.Errorf("sleepCtx(canceled) error = %v, want context.Canceled", err)
	}
	if err := sleepCtx(ctx, 0); err != context.Canceled {
		t.Errorf("sleepCtx(canceled, 0) error = %v, want context.Canceled", err)
	}
}
