package middleware

import (
	"encoding/json"
	"net/http"
)

// BodyLimit rejects oversized request bodies before any handler parses them.
// Requests that declare an oversized Content-Length are refused outright;
// chunked bodies are capped by MaxBytesReader and fail at read time.
func BodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "Request body too large"})
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
