package footballdata

import "time"

const fetcherName = "footballdata"

const (
	defaultBaseURL     = "https://api.football-data.org/v2"
	defaultCompetition = "PL"
	defaultTimeout     = 10 * time.Second
)

const statusSuccess = "success"
