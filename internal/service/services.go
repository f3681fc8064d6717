package service

import (
	"github.com/MKhiriev/dental-site/internal/adapter"
	"github.com/MKhiriev/dental-site/internal/config"
	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/site"
	"github.com/MKhiriev/dental-site/internal/store"
	"github.com/MKhiriev/dental-site/internal/utils"
)

// Services groups the services the handlers depend on. AuthService is nil
// when the admin inbox is disabled.
type Services struct {
	SiteService    SiteService
	BookingService BookingService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// Dependencies are the collaborators NewServices wires together. Forwarder
// and Observer may be nil.
type Dependencies struct {
	Accessor  *site.Accessor
	Storages  *store.Storages
	Forwarder adapter.BookingForwarder
	Observer  BookingObserver
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	storages := deps.Storages
	if storages == nil {
		storages = &store.Storages{}
	}

	bookingService := NewBookingValidationService(deps.Observer).Wrap(
		NewBookingService(storages.BookingRepository, deps.Forwarder, utils.NewUUIDGenerator(), deps.Observer, logger),
	)

	var authService AuthService
	if cfg.App.AdminEnabled() {
		authService = NewAuthService(cfg.App, logger)
	}

	return &Services{
		SiteService:    NewSiteService(deps.Accessor),
		BookingService: bookingService,
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
