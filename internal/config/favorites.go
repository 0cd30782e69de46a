package config

const (
	envFavoritesBackend = "FAVORITES_BACKEND"
	envFavoritesPath    = "FAVORITES_PATH"
	envMongoURI         = "MONGO_URI"
	envMongoDB          = "MONGO_DB"

	defaultFavoritesBackend = "file"
	defaultFavoritesPath    = "data/favorites.json"
	defaultMongoDB          = "matchday"
)

// Favorites backends selectable via FAVORITES_BACKEND.
const (
	FavoritesBackendMemory = "memory"
	FavoritesBackendFile   = "file"
	FavoritesBackendMongo  = "mongo"
)

// FavoritesConfig controls where favorite match ids are persisted.
type FavoritesConfig struct {
	Backend  string
	FilePath string
	MongoURI string
	MongoDB  string
}

func loadFavorites() FavoritesConfig {
	return FavoritesConfig{
		Backend:  envOrDefault(envFavoritesBackend, defaultFavoritesBackend),
		FilePath: envOrDefault(envFavoritesPath, defaultFavoritesPath),
		MongoURI: envOrDefault(envMongoURI, ""),
		MongoDB:  envOrDefault(envMongoDB, defaultMongoDB),
	}
}
