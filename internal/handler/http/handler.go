package http

import (
	"github.com/MKhiriev/tasky/internal/config"
	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/service"
)

type Handler struct {
	services *service.Services
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  cfg.Version,
		logger:   logger,
	}
}
