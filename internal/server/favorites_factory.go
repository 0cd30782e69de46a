package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"matchday-service/internal/config"
	"matchday-service/internal/favorites"
	"matchday-service/internal/logging"
)

const mongoConnectTimeout = 10 * time.Second

// buildFavoritesStore selects the favorites backend from config. It returns
// the store and a close func for backends holding connections.
func buildFavoritesStore(cfg config.FavoritesConfig, logger *slog.Logger) (favorites.Store, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Backend {
	case config.FavoritesBackendMemory:
		return favorites.NewMemoryStore(), noop, nil
	case config.FavoritesBackendFile, "":
		logging.Info(logger, "favorites backed by file", logging.FieldPath, cfg.FilePath)
		return favorites.NewFileStore(cfg.FilePath), noop, nil
	case config.FavoritesBackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
		defer cancel()

		store, err := favorites.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		logging.Info(logger, "favorites backed by mongo", "database", cfg.MongoDB)
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown favorites backend %q", cfg.Backend)
	}
}
