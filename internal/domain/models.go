package domain

// MatchStatus mirrors the upstream contract for match lifecycle states.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "SCHEDULED"
	StatusLive      MatchStatus = "LIVE"
	StatusInPlay    MatchStatus = "IN_PLAY"
	StatusPaused    MatchStatus = "PAUSED"
	StatusFinished  MatchStatus = "FINISHED"
	StatusPostponed MatchStatus = "POSTPONED"
	StatusCanceled  MatchStatus = "CANCELED"
)

// Team is a reference to one side of a fixture.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Period holds the goals scored by each side over one scoring period.
// Pointers distinguish "no result yet" from a genuine zero.
type Period struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Score captures the result data of a finished or in-play match.
type Score struct {
	Winner   string  `json:"winner,omitempty"`
	Duration string  `json:"duration,omitempty"`
	FullTime *Period `json:"fullTime,omitempty"`
	HalfTime *Period `json:"halfTime,omitempty"`
}

// Competition describes the tournament a match list belongs to.
type Competition struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Area string `json:"area,omitempty"`
}

// Match is one fixture as received from the remote source.
// Favorite is a local overlay attached at reconciliation time; it is never
// part of the remote payload.
type Match struct {
	ID       int         `json:"id"`
	UTCDate  string      `json:"utcDate"`
	Status   MatchStatus `json:"status"`
	Matchday int         `json:"matchday,omitempty"`
	Stage    string      `json:"stage,omitempty"`
	HomeTeam Team        `json:"homeTeam"`
	AwayTeam Team        `json:"awayTeam"`
	Score    *Score      `json:"score,omitempty"`
	Favorite bool        `json:"favorite"`
}

// MatchList is the normalized result of one upstream fetch.
type MatchList struct {
	Count       int         `json:"count"`
	Competition Competition `json:"competition"`
	Matches     []Match     `json:"matches"`
}

// Section is a date-bucketed, ordered group of matches for display.
// Date is the first ten characters of the members' UTCDate, treated as an
// opaque string key.
type Section struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}

// SectionsResponse is the payload returned by /matches.
type SectionsResponse struct {
	Date     string    `json:"date"`
	Sections []Section `json:"sections"`
}
