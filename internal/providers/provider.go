package providers

import (
	"context"

	"matchday-service/internal/domain"
)

// Fetcher defines how upstream fixture data is fetched and normalized.
// The competition parameter is the upstream competition code (e.g. "PL");
// implementations interpret an empty code as their configured default.
type Fetcher interface {
	FetchMatches(ctx context.Context, competition string) (domain.MatchList, error)
}
