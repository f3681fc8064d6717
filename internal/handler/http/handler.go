package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/dental-site/internal/config"
	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/service"
)

// Metrics records request metrics and exposes them for scraping.
// *metrics.Metrics implements it.
type Metrics interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
	Handler() http.Handler
}

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  Metrics

	logger *logger.Logger
}

// NewHandler returns a Handler serving services. metrics may be nil, in
// which case no request metrics are recorded and /metrics is not mounted.
func NewHandler(services *service.Services, cfg config.Server, metrics Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
	}
}
