// Package matchday coordinates the refresh cycle: fetch the fixture list,
// reconcile it with persisted favorites, group it into date sections, and
// publish the outcome through the screen state holder.
package matchday

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"matchday-service/internal/domain"
	"matchday-service/internal/favorites"
	"matchday-service/internal/logging"
	"matchday-service/internal/metrics"
	"matchday-service/internal/providers"
	"matchday-service/internal/schedule"
	"matchday-service/internal/screenstate"
	"matchday-service/internal/timeutil"
)

// ErrOutOfRange reports a toggle aimed at a section/row that does not exist.
var ErrOutOfRange = errors.New("section or row out of range")

// Service owns the section list and the screen state for one competition.
// All mutations of the section list happen under its mutex; whole refresh
// cycles are additionally serialized so overlapping refreshes cannot
// interleave their writes.
type Service struct {
	fetcher     providers.Fetcher
	store       favorites.Store
	logger      *slog.Logger
	metrics     *metrics.Recorder
	competition string
	state       *screenstate.Holder[struct{}]
	now         func() time.Time

	refreshMu sync.Mutex
	mu        sync.RWMutex
	sections  []domain.Section
	compInfo  domain.Competition
}

// New constructs a Service for the given competition code.
func New(fetcher providers.Fetcher, store favorites.Store, logger *slog.Logger, recorder *metrics.Recorder, competition string) *Service {
	return &Service{
		fetcher:     fetcher,
		store:       store,
		logger:      logger,
		metrics:     recorder,
		competition: competition,
		state:       screenstate.NewHolder[struct{}](),
		now:         time.Now,
	}
}

// Refresh runs one sync cycle: publish Loading, fetch, reconcile favorites,
// rebuild sections, publish Success or Failure. Every failure terminates in
// a Failure state; the returned error carries the same cause for non-view
// callers. Concurrent calls are serialized.
func (s *Service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.state.Set(screenstate.Loading[struct{}]())

	start := s.now()
	list, err := s.fetcher.FetchMatches(ctx, s.competition)
	s.metrics.RecordFetchAttempt(s.competition, time.Since(start), err)
	if err != nil {
		return s.fail(ctx, start, err)
	}

	saved, err := s.store.SavedIDs(ctx)
	if err != nil {
		return s.fail(ctx, start, err)
	}

	matches := favorites.Apply(list.Matches, saved)
	today := timeutil.FormatDate(s.now().UTC())
	sections := schedule.BuildSections(matches, today)

	s.mu.Lock()
	s.sections = sections
	s.compInfo = list.Competition
	s.mu.Unlock()

	s.metrics.RecordRefreshCycle(time.Since(start), nil)
	s.state.Set(screenstate.Success(struct{}{}))

	logging.Info(logging.FromContext(ctx, s.logger), "refreshed matches",
		logging.FieldCompetition, s.competition,
		logging.FieldDate, today,
		logging.FieldCount, len(matches),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *Service) fail(ctx context.Context, start time.Time, err error) error {
	s.metrics.RecordRefreshCycle(time.Since(start), err)
	s.state.Set(screenstate.Failure[struct{}](failureMessage(err)))

	logging.Error(logging.FromContext(ctx, s.logger), "refresh failed", err,
		logging.FieldCompetition, s.competition,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return err
}

// failureMessage picks the user-facing text: the envelope's message for
// business failures, the error text for transport failures. The state
// constructor substitutes the generic fallback for anything empty.
func failureMessage(err error) string {
	if bizErr, ok := providers.AsBusinessError(err); ok {
		return bizErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// ToggleFavorite flips the favorite flag of the match at the given section
// and row. The store write happens first; the in-memory flag changes only
// after the write succeeds, so the displayed state never drifts from the
// persisted set. Returns the new favorite state.
func (s *Service) ToggleFavorite(ctx context.Context, sectionIdx, rowIdx int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sectionIdx < 0 || sectionIdx >= len(s.sections) {
		return false, ErrOutOfRange
	}
	section := &s.sections[sectionIdx]
	if rowIdx < 0 || rowIdx >= len(section.Matches) {
		return false, ErrOutOfRange
	}

	m := &section.Matches[rowIdx]
	target := !m.Favorite

	var err error
	if target {
		err = s.store.Save(ctx, m.ID)
	} else {
		err = s.store.Delete(ctx, m.ID)
	}
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "favorite toggle persist failed", err,
			logging.FieldMatchID, m.ID,
		)
		return m.Favorite, err
	}

	m.Favorite = target
	s.metrics.RecordToggle(target)
	return target, nil
}

// Sections returns a snapshot of the current section list. The copy is deep
// enough that callers cannot alias the service's matches.
func (s *Service) Sections() []domain.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Section, len(s.sections))
	for i, section := range s.sections {
		matches := make([]domain.Match, len(section.Matches))
		copy(matches, section.Matches)
		out[i] = domain.Section{Date: section.Date, Matches: matches}
	}
	return out
}

// FavoriteSections returns the favorites-only view of the current sections,
// using the persisted id set as the source of truth.
func (s *Service) FavoriteSections(ctx context.Context) ([]domain.Section, error) {
	saved, err := s.store.SavedIDs(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.FavoritesOnly(s.Sections(), saved), nil
}

// Competition returns the metadata of the last fetched snapshot.
func (s *Service) Competition() domain.Competition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.compInfo
}

// State returns the current screen state.
func (s *Service) State() screenstate.State[struct{}] {
	return s.state.Current()
}

// ObserveState subscribes to screen state transitions with latest-value
// semantics.
func (s *Service) ObserveState() (<-chan screenstate.State[struct{}], func()) {
	return s.state.Subscribe()
}
