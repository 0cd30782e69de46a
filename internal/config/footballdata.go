package config

const (
	envFdBaseURL = "FOOTBALLDATA_BASE_URL"
	envFdAPIKey  = "FOOTBALLDATA_API_KEY"

	defaultFdBaseURL = "https://api.football-data.org/v2"
)

// FootballDataConfig controls how we talk to the football-data API.
type FootballDataConfig struct {
	BaseURL string
	APIKey  string
}

func loadFootballData() FootballDataConfig {
	return FootballDataConfig{
		BaseURL: envOrDefault(envFdBaseURL, defaultFdBaseURL),
		APIKey:  envOrDefault(envFdAPIKey, ""),
	}
}
