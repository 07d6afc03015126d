package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// @Summary      List recent events
// @Description  Returns the caller's change events newer than the "since" timestamp (RFC 3339), oldest first. Without "since" the whole journal is returned, up to the server-side page limit.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        since  query     string  false  "RFC 3339 timestamp"  example(2026-08-29T12:00:00Z)
// @Success      200    {array}   models.Event
// @Failure      400    {string}  string "Invalid since parameter"
// @Failure      401    {string}  string "Unauthorized"
// @Failure      500    {string}  string "Internal Server Error"
// @Router       /events [get]
func (s *Server) ListEventsHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())

	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "Invalid 'since' parameter, expected RFC 3339", http.StatusBadRequest)
			return
		}
		since = parsed
	}

	events, err := s.journal.Since(r.Context(), userID, since)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}
