package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"matchday-service/internal/domain"
)

// StubFetcher is a test double for providers.Fetcher.
type StubFetcher struct {
	List   domain.MatchList
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchMatches returns the configured list and error while tracking calls.
func (s *StubFetcher) FetchMatches(ctx context.Context, competition string) (domain.MatchList, error) {
	_ = ctx
	_ = competition
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.List, s.Err
}

// SequenceFetcher returns each configured result in turn, repeating the last
// one once the sequence is exhausted.
type SequenceFetcher struct {
	mu      sync.Mutex
	Results []FetchResult
	idx     int
}

// FetchResult is one scripted fetch outcome.
type FetchResult struct {
	List domain.MatchList
	Err  error
}

// FetchMatches pops the next scripted result.
func (s *SequenceFetcher) FetchMatches(ctx context.Context, competition string) (domain.MatchList, error) {
	_ = ctx
	_ = competition
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Results) == 0 {
		return domain.MatchList{}, nil
	}
	res := s.Results[s.idx]
	if s.idx < len(s.Results)-1 {
		s.idx++
	}
	return res.List, res.Err
}

// StubFavorites is a test double for favorites.Store with scriptable
// failures.
type StubFavorites struct {
	mu        sync.Mutex
	ids       map[int]struct{}
	SaveErr   error
	DeleteErr error
	ReadErr   error
}

// NewStubFavorites seeds a stub store with the given ids.
func NewStubFavorites(ids ...int) *StubFavorites {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &StubFavorites{ids: set}
}

// SavedIDs returns a copy of the stored set or the scripted read error.
func (s *StubFavorites) SavedIDs(ctx context.Context) (map[int]struct{}, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	out := make(map[int]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// Save stores the id or returns the scripted error.
func (s *StubFavorites) Save(ctx context.Context, id int) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.ids[id] = struct{}{}
	return nil
}

// Delete removes the id or returns the scripted error.
func (s *StubFavorites) Delete(ctx context.Context, id int) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.ids, id)
	return nil
}

// Has reports membership without the copy that SavedIDs makes.
func (s *StubFavorites) Has(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}
