package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	PollEnabled  bool
	Competition  string
	FootballData FootballDataConfig
	Favorites    FavoritesConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		PollEnabled:  boolEnvOrDefault(envPollEnabled, defaultPollEnabled),
		Competition:  envOrDefault(envCompetition, defaultCompetition),
		FootballData: loadFootballData(),
		Favorites:    loadFavorites(),
		Metrics:      loadMetrics(),
	}
}
