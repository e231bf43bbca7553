package http

import (
	"context"
	"net/http"
)

// withTimeout bounds every request by cfg.RequestTimeout. Services abort on
// the cancelled context, so the caller still gets the error envelope
// before the server write deadline.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.RequestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
