package http

import (
	"net/http"
	"runtime/debug"

	"github.com/geo-waqf/geowaqf/internal/utils"
	"github.com/geo-waqf/geowaqf/models"
)

const panicMessage = "internal server error"

// withRecover turns a handler panic into the error envelope at 500.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			h.logger.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("uri", r.RequestURI).
				Msg("recovered from panic")

			if _, err := utils.WriteJSON(w, models.NewErrorResponse(panicMessage), http.StatusInternalServerError); err != nil {
				h.logger.Err(err).Msg("error writing error response")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
