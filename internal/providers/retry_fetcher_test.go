package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"matchday-service/internal/domain"
	"matchday-service/internal/teststubs"
)

func TestRetryingFetcherReturnsFirstSuccess(t *testing.T) {
	stub := &teststubs.StubFetcher{
		List: domain.MatchList{Count: 1, Matches: []domain.Match{{ID: 1}}},
	}
	fetcher := NewRetryingFetcher(stub, nil, 3, time.Millisecond)

	list, err := fetcher.FetchMatches(context.Background(), "PL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Count != 1 {
		t.Fatalf("unexpected list %+v", list)
	}
	if stub.Calls.Load() != 1 {
		t.Fatalf("expected a single call, got %d", stub.Calls.Load())
	}
}

func TestRetryingFetcherRetriesTransportErrors(t *testing.T) {
	transportErr := errors.New("connection reset")
	seq := &teststubs.SequenceFetcher{Results: []teststubs.FetchResult{
		{Err: transportErr},
		{Err: transportErr},
		{List: domain.MatchList{Count: 3}},
	}}
	fetcher := NewRetryingFetcher(seq, nil, 3, time.Millisecond)

	list, err := fetcher.FetchMatches(context.Background(), "PL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Count != 3 {
		t.Fatalf("expected third attempt's list, got %+v", list)
	}
}

func TestRetryingFetcherExhaustsAttempts(t *testing.T) {
	stub := &teststubs.StubFetcher{Err: errors.New("boom")}
	fetcher := NewRetryingFetcher(stub, nil, 2, time.Millisecond)

	_, err := fetcher.FetchMatches(context.Background(), "PL")
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected last error, got %v", err)
	}
	if stub.Calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", stub.Calls.Load())
	}
}

func TestRetryingFetcherDoesNotRetryBusinessErrors(t *testing.T) {
	stub := &teststubs.StubFetcher{Err: &BusinessError{Status: "error", Message: "not available"}}
	fetcher := NewRetryingFetcher(stub, nil, 3, time.Millisecond)

	_, err := fetcher.FetchMatches(context.Background(), "PL")
	if _, ok := AsBusinessError(err); !ok {
		t.Fatalf("expected business error, got %v", err)
	}
	if stub.Calls.Load() != 1 {
		t.Fatalf("business errors must not be retried, got %d attempts", stub.Calls.Load())
	}
}

func TestRetryingFetcherHonorsContextDuringBackoff(t *testing.T) {
	stub := &teststubs.StubFetcher{Err: errors.New("boom")}
	fetcher := NewRetryingFetcher(stub, nil, 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := fetcher.FetchMatches(ctx, "PL")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestRetryingFetcherNilInner(t *testing.T) {
	fetcher := NewRetryingFetcher(nil, nil, 0, 0)
	if _, err := fetcher.FetchMatches(context.Background(), "PL"); !errors.Is(err, ErrFetcherUnavailable) {
		t.Fatalf("expected ErrFetcherUnavailable, got %v", err)
	}
}
