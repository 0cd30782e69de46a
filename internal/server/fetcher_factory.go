package server

import (
	"log/slog"
	"time"

	"matchday-service/internal/config"
	"matchday-service/internal/providers"
	"matchday-service/internal/providers/footballdata"
)

// fetcherFactory assembles the upstream fetcher with shared wrappers
// (rate limit + retry).
type fetcherFactory struct {
	logger *slog.Logger
}

func newFetcherFactory(logger *slog.Logger) fetcherFactory {
	return fetcherFactory{logger: logger}
}

// build returns the wrapped fetcher and a close func that stops the rate
// limiter ticker.
func (f fetcherFactory) build(cfg config.Config) (providers.Fetcher, func()) {
	base := footballdata.NewClient(footballdata.Config{
		BaseURL:     cfg.FootballData.BaseURL,
		APIKey:      cfg.FootballData.APIKey,
		Competition: cfg.Competition,
	})
	// Shared rate limiter to respect the upstream quota when the poll
	// interval is short.
	limited := providers.NewRateLimitedFetcher(base, time.Minute, f.logger)
	closeFn := func() {
		if rl, ok := limited.(interface{ Close() }); ok {
			rl.Close()
		}
	}
	return providers.NewRetryingFetcher(limited, f.logger, 0, 0), closeFn
}
