package providers

import (
	"context"
	"log/slog"
	"time"

	"matchday-service/internal/domain"
	"matchday-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingFetcher wraps a Fetcher with retry/backoff behavior. Business
// failures are not retried: the upstream answered, it just said no.
type retryingFetcher struct {
	inner       Fetcher
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingFetcher wraps the given fetcher with retries. If maxAttempts or
// backoff are <= 0, defaults are used.
func NewRetryingFetcher(inner Fetcher, logger *slog.Logger, maxAttempts int, backoff time.Duration) Fetcher {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingFetcher{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingFetcher) FetchMatches(ctx context.Context, competition string) (domain.MatchList, error) {
	if r.inner == nil {
		return domain.MatchList{}, ErrFetcherUnavailable
	}

	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		list, err := r.inner.FetchMatches(ctx, competition)
		if err == nil {
			return list, nil
		}
		lastErr = err

		if _, ok := AsBusinessError(err); ok {
			return domain.MatchList{}, err
		}
		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "fetcher retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return domain.MatchList{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "fetcher failed", "attempts", r.maxAttempts, "err", lastErr)
	return domain.MatchList{}, lastErr
}

func (r *retryingFetcher) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
