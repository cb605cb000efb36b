package httpx

import (
	"log/slog"
	"net/http"
)

// Recovery converts handler panics into 500 responses instead of dropping
// the connection.
func Recovery() func(handler http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					slog.ErrorContext(r.Context(), "Handler panicked",
						"http_method", r.Method,
						"http_path", r.URL.Path,
						"panic", p,
					)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			handler.ServeHTTP(w, r)
		})
	}
}
