package footballdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"matchday-service/internal/providers"
)

func TestFetchMatchesDecodesEnvelope(t *testing.T) {
	var gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Auth-Token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 2,
			"competition": {"id": 2021, "name": "Premier League", "code": "PL", "area": {"id": 2072, "name": "England"}},
			"matches": [
				{"id": 1, "utcDate": "2023-10-15T10:00:00Z", "status": "SCHEDULED", "matchday": 9,
				 "homeTeam": {"id": 57, "name": "Arsenal"}, "awayTeam": {"id": 65, "name": "Man City"}},
				{"id": 2, "utcDate": "2023-10-15T14:00:00Z", "status": "FINISHED",
				 "homeTeam": {"id": 61, "name": "Chelsea"}, "awayTeam": {"id": 64, "name": "Liverpool"},
				 "score": {"winner": "AWAY_TEAM", "duration": "REGULAR", "fullTime": {"homeTeam": 0, "awayTeam": 1}}}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret", Competition: "PL"})

	list, err := client.FetchMatches(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/competitions/PL/matches" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotToken != "secret" {
		t.Fatalf("expected auth token header, got %q", gotToken)
	}
	if list.Count != 2 || len(list.Matches) != 2 {
		t.Fatalf("unexpected list %+v", list)
	}
	if list.Competition.Name != "Premier League" || list.Competition.Area != "England" {
		t.Fatalf("unexpected competition %+v", list.Competition)
	}
	if list.Matches[0].HomeTeam.Name != "Arsenal" {
		t.Fatalf("unexpected home team %+v", list.Matches[0].HomeTeam)
	}
	score := list.Matches[1].Score
	if score == nil || score.FullTime == nil || score.FullTime.Away == nil || *score.FullTime.Away != 1 {
		t.Fatalf("unexpected score %+v", score)
	}
}

func TestFetchMatchesBusinessFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "error", "message": "competition not available"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.FetchMatches(context.Background(), "XX")
	bizErr, ok := providers.AsBusinessError(err)
	if !ok {
		t.Fatalf("expected business error, got %v", err)
	}
	if bizErr.Message != "competition not available" {
		t.Fatalf("unexpected message %q", bizErr.Message)
	}
}

func TestFetchMatchesTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.FetchMatches(context.Background(), "PL")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if _, ok := providers.AsBusinessError(err); ok {
		t.Fatal("transport failure must not map to a business error")
	}
}

func TestFetchMatchesDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"matches": [`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	if _, err := client.FetchMatches(context.Background(), "PL"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchMatchesToleratesSparsePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"matches": [{"id": 3, "score": null, "homeTeam": null}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	list, err := client.FetchMatches(context.Background(), "PL")
	if err != nil {
		t.Fatalf("sparse payload must decode, got %v", err)
	}
	if len(list.Matches) != 1 || list.Matches[0].ID != 3 {
		t.Fatalf("unexpected matches %+v", list.Matches)
	}
	if list.Matches[0].Score != nil {
		t.Fatalf("null score should map to nil, got %+v", list.Matches[0].Score)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("unexpected default %q", got)
	}
	if got := normalizeBaseURL("http://example.com/api/"); got != "http://example.com/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", got)
	}
}
