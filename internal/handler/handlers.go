package handler

import (
	"github.com/MKhiriev/dental-site/internal/config"
	"github.com/MKhiriev/dental-site/internal/handler/http"
	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled in cfg. metrics may
// be nil.
func NewHandlers(services *service.Services, cfg config.Server, metrics http.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, metrics, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
