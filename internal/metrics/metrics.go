package metrics

import (
	"sync"
	"time"
)

type fetcherStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about fetcher calls,
// refresh cycles and favorite toggles. All methods are nil-safe so callers
// can run without telemetry wired.
type Recorder struct {
	mu            sync.Mutex
	fetchers      map[string]*fetcherStats
	refreshCycles int
	refreshErrors int
	toggleSaves   int
	toggleDeletes int
	lastRefresh   time.Duration
	otel          *otelInstruments
}

// NewRecorder constructs a Recorder without an exporting backend.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		fetchers: make(map[string]*fetcherStats),
		otel:     otel,
	}
}

// RecordFetchAttempt increments counters for a fetcher call and stores the
// last observed latency.
func (r *Recorder) RecordFetchAttempt(fetcher string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(fetcher)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(fetcher, duration, err)
	}
}

// RecordRefreshCycle tracks one orchestrator refresh with its outcome.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.refreshCycles++
	r.lastRefresh = duration
	if err != nil {
		r.refreshErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefreshCycle(duration, err)
	}
}

// RecordToggle tracks a favorite toggle; saved reports the new state.
func (r *Recorder) RecordToggle(saved bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if saved {
		r.toggleSaves++
	} else {
		r.toggleDeletes++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordToggle(saved)
	}
}

// RecordRequest tracks an HTTP request by route and status.
func (r *Recorder) RecordRequest(route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordRequest(route, status, duration)
	}
}

// FetcherSnapshot reports call/error counts for a fetcher, for tests and
// debugging.
func (r *Recorder) FetcherSnapshot(fetcher string) (calls, errors int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.fetchers[fetcher]
	if !ok {
		return 0, 0
	}
	return stats.calls, stats.errors
}

// RefreshSnapshot reports refresh cycle/error counts.
func (r *Recorder) RefreshSnapshot() (cycles, errors int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshCycles, r.refreshErrors
}

// ToggleSnapshot reports save/delete toggle counts.
func (r *Recorder) ToggleSnapshot() (saves, deletes int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.toggleSaves, r.toggleDeletes
}

func (r *Recorder) ensureStats(fetcher string) *fetcherStats {
	stats, ok := r.fetchers[fetcher]
	if !ok {
		stats = &fetcherStats{}
		r.fetchers[fetcher] = stats
	}
	return stats
}
