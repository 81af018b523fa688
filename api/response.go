package api

import (
	"encoding/json"
	"net/http"

	"github.com/wanderkit/travelgate/log"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf(r.Context(), "Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, map[string]any{
		"success": false,
		"detail":  message,
	})
}
