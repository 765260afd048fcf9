package handler

import (
	"github.com/MKhiriev/tasky/internal/config"
	"github.com/MKhiriev/tasky/internal/handler/http"
	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, appCfg config.App, serverCfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if serverCfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, appCfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
