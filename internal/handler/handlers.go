package handler

import (
	"github.com/geo-waqf/geowaqf/internal/config"
	"github.com/geo-waqf/geowaqf/internal/handler/http"
	"github.com/geo-waqf/geowaqf/internal/logger"
	"github.com/geo-waqf/geowaqf/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
