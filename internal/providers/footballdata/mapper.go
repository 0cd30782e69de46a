package footballdata

import (
	"strings"

	"matchday-service/internal/domain"
)

func mapMatchList(envelope matchesEnvelope) domain.MatchList {
	matches := make([]domain.Match, 0, len(envelope.Matches))
	for _, m := range envelope.Matches {
		matches = append(matches, mapMatch(m))
	}
	return domain.MatchList{
		Count:       envelope.Count,
		Competition: mapCompetition(envelope.Competition),
		Matches:     matches,
	}
}

func mapMatch(m matchResponse) domain.Match {
	return domain.Match{
		ID:       m.ID,
		UTCDate:  m.UTCDate,
		Status:   mapStatus(m.Status),
		Matchday: m.Matchday,
		Stage:    m.Stage,
		HomeTeam: mapTeam(m.HomeTeam),
		AwayTeam: mapTeam(m.AwayTeam),
		Score:    mapScore(m.Score),
	}
}

func mapCompetition(c competitionResponse) domain.Competition {
	area := ""
	if c.Area != nil {
		area = c.Area.Name
	}
	return domain.Competition{
		ID:   c.ID,
		Name: c.Name,
		Code: c.Code,
		Area: area,
	}
}

func mapTeam(t *teamResponse) domain.Team {
	if t == nil {
		return domain.Team{}
	}
	return domain.Team{ID: t.ID, Name: t.Name}
}

func mapScore(s *scoreResponse) *domain.Score {
	if s == nil {
		return nil
	}
	return &domain.Score{
		Winner:   s.Winner,
		Duration: s.Duration,
		FullTime: mapPeriod(s.FullTime),
		HalfTime: mapPeriod(s.HalfTime),
	}
}

func mapPeriod(p *periodResponse) *domain.Period {
	if p == nil {
		return nil
	}
	return &domain.Period{Home: p.HomeTeam, Away: p.AwayTeam}
}

func mapStatus(status string) domain.MatchStatus {
	switch strings.ToUpper(status) {
	case "FINISHED":
		return domain.StatusFinished
	case "LIVE":
		return domain.StatusLive
	case "IN_PLAY":
		return domain.StatusInPlay
	case "PAUSED":
		return domain.StatusPaused
	case "POSTPONED":
		return domain.StatusPostponed
	case "CANCELED", "CANCELLED":
		return domain.StatusCanceled
	default:
		return domain.StatusScheduled
	}
}
