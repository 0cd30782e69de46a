package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"time"

	"matchday-service/internal/domain"
	"matchday-service/internal/matchday"
	"matchday-service/internal/poller"
	"matchday-service/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the matchday service.
type Handler struct {
	svc      *matchday.Service
	logger   *slog.Logger
	statusFn func() poller.Status
	now      nowFunc
}

// NewHandler constructs a Handler with defaults. statusFn may be nil when no
// poller is running.
func NewHandler(svc *matchday.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
		now:      time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness based on the poller's recent history. Without a
// poller the service is ready as soon as it is serving.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
		return
	}
	status := h.statusFn()
	if !status.IsReady() {
		h.writeJSON(w, nethttp.StatusServiceUnavailable, map[string]any{
			"status":               "not ready",
			"consecutive_failures": status.ConsecutiveFailures,
			"last_error":           status.LastError,
		})
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// State returns the current screen state tag and, for failures, the message.
func (h *Handler) State(w nethttp.ResponseWriter, r *nethttp.Request) {
	state := h.svc.State()
	payload := map[string]string{"state": state.Kind().String()}
	if msg, ok := state.Err(); ok {
		payload["error"] = msg
	}
	h.writeJSON(w, nethttp.StatusOK, payload)
}

// Matches returns the current snapshot of date sections.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, domain.SectionsResponse{
		Date:     timeutil.FormatDate(h.now().UTC()),
		Sections: h.svc.Sections(),
	})
}

// FavoriteMatches returns the favorites-only view of the snapshot.
func (h *Handler) FavoriteMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	sections, err := h.svc.FavoriteSections(r.Context())
	if err != nil {
		h.writeError(w, nethttp.StatusBadGateway, err.Error())
		return
	}
	h.writeJSON(w, nethttp.StatusOK, domain.SectionsResponse{
		Date:     timeutil.FormatDate(h.now().UTC()),
		Sections: sections,
	})
}

type toggleRequest struct {
	Section *int `json:"section"`
	Row     *int `json:"row"`
}

// ToggleFavorite flips the favorite flag of one match.
func (h *Handler) ToggleFavorite(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.writeError(w, nethttp.StatusMethodNotAllowed, "use POST")
		return
	}

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Section == nil || req.Row == nil {
		h.writeError(w, nethttp.StatusBadRequest, "body must be {\"section\": n, \"row\": n}")
		return
	}

	saved, err := h.svc.ToggleFavorite(r.Context(), *req.Section, *req.Row)
	if err != nil {
		if errors.Is(err, matchday.ErrOutOfRange) {
			h.writeError(w, nethttp.StatusBadRequest, err.Error())
			return
		}
		h.writeError(w, nethttp.StatusBadGateway, err.Error())
		return
	}

	h.writeJSON(w, nethttp.StatusOK, map[string]bool{"favorite": saved})
}

// Refresh runs one sync cycle and reports the outcome.
func (h *Handler) Refresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.writeError(w, nethttp.StatusMethodNotAllowed, "use POST")
		return
	}

	if err := h.svc.Refresh(r.Context()); err != nil {
		msg, _ := h.svc.State().Err()
		h.writeError(w, nethttp.StatusBadGateway, msg)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
