package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		envPort, envPollInterval, envPollEnabled, envCompetition,
		envFdBaseURL, envFdAPIKey,
		envFavoritesBackend, envFavoritesPath, envMongoURI, envMongoDB,
		envMetricsOn, envMetricsPort, envOtelEndpoint, envOtelService, envOtelInsecure,
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if !cfg.PollEnabled {
		t.Fatal("polling should default to enabled")
	}
	if cfg.Competition != defaultCompetition {
		t.Fatalf("unexpected competition %q", cfg.Competition)
	}
	if cfg.FootballData.BaseURL != defaultFdBaseURL {
		t.Fatalf("unexpected base url %q", cfg.FootballData.BaseURL)
	}
	if cfg.Favorites.Backend != FavoritesBackendFile {
		t.Fatalf("unexpected favorites backend %q", cfg.Favorites.Backend)
	}
	if cfg.Favorites.FilePath != defaultFavoritesPath {
		t.Fatalf("unexpected favorites path %q", cfg.Favorites.FilePath)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics should default to enabled")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envPollInterval, "30s")
	t.Setenv(envPollEnabled, "false")
	t.Setenv(envCompetition, "CL")
	t.Setenv(envFdAPIKey, "token-123")
	t.Setenv(envFavoritesBackend, "mongo")
	t.Setenv(envMongoURI, "mongodb://localhost:27017")
	t.Setenv(envMongoDB, "fixtures")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if cfg.PollEnabled {
		t.Fatal("expected polling disabled")
	}
	if cfg.Competition != "CL" {
		t.Fatalf("unexpected competition %q", cfg.Competition)
	}
	if cfg.FootballData.APIKey != "token-123" {
		t.Fatalf("unexpected api key %q", cfg.FootballData.APIKey)
	}
	if cfg.Favorites.Backend != FavoritesBackendMongo {
		t.Fatalf("unexpected backend %q", cfg.Favorites.Backend)
	}
	if cfg.Favorites.MongoURI != "mongodb://localhost:27017" || cfg.Favorites.MongoDB != "fixtures" {
		t.Fatalf("unexpected mongo settings %+v", cfg.Favorites)
	}
}
