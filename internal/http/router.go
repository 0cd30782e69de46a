package http

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/state", handler.State)
	mux.HandleFunc("/matches", handler.Matches)
	mux.HandleFunc("/matches/favorites", handler.FavoriteMatches)
	mux.HandleFunc("/matches/favorites/toggle", handler.ToggleFavorite)
	mux.HandleFunc("/refresh", handler.Refresh)
	return mux
}
