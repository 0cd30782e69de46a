package providers

import (
	"context"
	"log/slog"
	"time"

	"matchday-service/internal/domain"
)

// rateLimitedFetcher wraps a Fetcher and enforces a minimum interval between
// calls. Calls block until the interval elapses to avoid exceeding upstream
// quotas.
type rateLimitedFetcher struct {
	next     Fetcher
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedFetcher returns a Fetcher that limits calls to the given
// interval.
func NewRateLimitedFetcher(next Fetcher, interval time.Duration, logger *slog.Logger) Fetcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedFetcher{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (f *rateLimitedFetcher) FetchMatches(ctx context.Context, competition string) (domain.MatchList, error) {
	if f == nil || f.next == nil {
		if f != nil && f.logger != nil {
			f.logger.Warn("fetcher unavailable", slog.String("fetcher", "rate-limited"))
		}
		return domain.MatchList{}, ErrFetcherUnavailable
	}
	select {
	case <-ctx.Done():
		if f.logger != nil {
			f.logger.Warn("rate-limited fetch canceled", slog.String("fetcher", "rate-limited"))
		}
		return domain.MatchList{}, ctx.Err()
	case <-f.ticker.C:
	}
	if f.logger != nil {
		f.logger.Debug("rate-limited fetch", slog.String("competition", competition))
	}
	return f.next.FetchMatches(ctx, competition)
}

// Close stops the interval ticker.
func (f *rateLimitedFetcher) Close() {
	if f.ticker != nil {
		f.ticker.Stop()
	}
}
