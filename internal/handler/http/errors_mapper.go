package http

import (
	"errors"
	"net/http"

	"github.com/geo-waqf/geowaqf/internal/adapter"
	"github.com/geo-waqf/geowaqf/internal/logger"
	"github.com/geo-waqf/geowaqf/internal/service"
	"github.com/geo-waqf/geowaqf/internal/utils"
	"github.com/geo-waqf/geowaqf/models"
	"github.com/rs/zerolog"
)

// Known degraded states are expected until the operator fixes the
// deployment, so they log as warnings instead of errors.
var errorLevelMap = map[error]zerolog.Level{
	service.ErrRegionUnavailable:  zerolog.WarnLevel,
	service.ErrNoCloudFreeImagery: zerolog.WarnLevel,
	service.ErrNoImagery:          zerolog.WarnLevel,
	adapter.ErrNotAuthenticated:   zerolog.WarnLevel,
	adapter.ErrTooManyRequests:    zerolog.WarnLevel,
}

func levelFromError(err error) zerolog.Level {
	for target, level := range errorLevelMap {
		if errors.Is(err, target) {
			return level
		}
	}
	return zerolog.ErrorLevel
}

// writeError answers every failure with the error envelope at 500 and the
// error text as message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	logger.FromRequest(r).WithLevel(levelFromError(err)).
		Err(err).
		Str("func", fn).
		Msg("request failed")

	if _, werr := utils.WriteJSON(w, models.NewErrorResponse(err.Error()), http.StatusInternalServerError); werr != nil {
		logger.FromRequest(r).Err(werr).Msg("error writing error response")
	}
}
