package http

import (
	"github.com/geo-waqf/geowaqf/internal/config"
	"github.com/geo-waqf/geowaqf/internal/logger"
	"github.com/geo-waqf/geowaqf/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
