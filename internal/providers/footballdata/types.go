package footballdata

// Wire shapes for the football-data matches endpoint. Every field is
// optional-tolerant: a missing or null field never fails the decode.
type matchesEnvelope struct {
	Status      string              `json:"status"`
	Message     string              `json:"message"`
	Count       int                 `json:"count"`
	Competition competitionResponse `json:"competition"`
	Matches     []matchResponse     `json:"matches"`
}

type competitionResponse struct {
	ID   int           `json:"id"`
	Name string        `json:"name"`
	Code string        `json:"code"`
	Area *areaResponse `json:"area"`
}

type areaResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type matchResponse struct {
	ID       int            `json:"id"`
	UTCDate  string         `json:"utcDate"`
	Status   string         `json:"status"`
	Matchday int            `json:"matchday"`
	Stage    string         `json:"stage"`
	HomeTeam *teamResponse  `json:"homeTeam"`
	AwayTeam *teamResponse  `json:"awayTeam"`
	Score    *scoreResponse `json:"score"`
}

type teamResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type scoreResponse struct {
	Winner   string          `json:"winner"`
	Duration string          `json:"duration"`
	FullTime *periodResponse `json:"fullTime"`
	HalfTime *periodResponse `json:"halfTime"`
}

type periodResponse struct {
	HomeTeam *int `json:"homeTeam"`
	AwayTeam *int `json:"awayTeam"`
}
