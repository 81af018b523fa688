package api

import (
	"net/http"

	"github.com/wanderkit/travelgate/gwcontext"
)

// requestID stamps every request with a unique ID, propagated through the
// context for log correlation and echoed in the X-Request-Id header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = gwcontext.NewRequestID()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(gwcontext.WithRequestID(r.Context(), id)))
	})
}
