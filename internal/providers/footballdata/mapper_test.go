package footballdata

import (
	"testing"

	"matchday-service/internal/domain"
)

func TestMapStatus(t *testing.T) {
	cases := []struct {
		in   string
		want domain.MatchStatus
	}{
		{"SCHEDULED", domain.StatusScheduled},
		{"FINISHED", domain.StatusFinished},
		{"finished", domain.StatusFinished},
		{"IN_PLAY", domain.StatusInPlay},
		{"LIVE", domain.StatusLive},
		{"PAUSED", domain.StatusPaused},
		{"POSTPONED", domain.StatusPostponed},
		{"CANCELED", domain.StatusCanceled},
		{"CANCELLED", domain.StatusCanceled},
		{"", domain.StatusScheduled},
		{"SOMETHING_NEW", domain.StatusScheduled},
	}

	for _, tc := range cases {
		if got := mapStatus(tc.in); got != tc.want {
			t.Fatalf("mapStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMapMatchNilSubobjects(t *testing.T) {
	got := mapMatch(matchResponse{ID: 7, UTCDate: "2023-10-15T10:00:00Z"})

	if got.ID != 7 {
		t.Fatalf("unexpected id %d", got.ID)
	}
	if got.Score != nil {
		t.Fatalf("expected nil score, got %+v", got.Score)
	}
	if got.HomeTeam != (domain.Team{}) || got.AwayTeam != (domain.Team{}) {
		t.Fatalf("expected zero teams, got %+v / %+v", got.HomeTeam, got.AwayTeam)
	}
	if got.Favorite {
		t.Fatal("favorite is a local overlay and must never be set by the mapper")
	}
}

func TestMapScorePeriods(t *testing.T) {
	home, away := 2, 1
	got := mapScore(&scoreResponse{
		Winner:   "HOME_TEAM",
		Duration: "REGULAR",
		FullTime: &periodResponse{HomeTeam: &home, AwayTeam: &away},
	})

	if got.Winner != "HOME_TEAM" {
		t.Fatalf("unexpected winner %q", got.Winner)
	}
	if got.FullTime == nil || *got.FullTime.Home != 2 || *got.FullTime.Away != 1 {
		t.Fatalf("unexpected full time %+v", got.FullTime)
	}
	if got.HalfTime != nil {
		t.Fatalf("expected nil half time, got %+v", got.HalfTime)
	}
}

func TestMapCompetitionWithoutArea(t *testing.T) {
	got := mapCompetition(competitionResponse{ID: 2021, Name: "Premier League", Code: "PL"})
	if got.Area != "" {
		t.Fatalf("expected empty area, got %q", got.Area)
	}
}
