package service

import (
	"context"

	"github.com/MKhiriev/dental-site/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=BookingServiceWrapper

// SiteService exposes the resolved clinic configuration to the
// presentation layer.
type SiteService interface {
	// Config returns the full resolved configuration with service icons
	// resolved.
	Config(ctx context.Context) models.SiteView
	// Section returns a single top-level block by its section name.
	Section(ctx context.Context, name string) (any, error)
	// Source reports which source produced the configuration.
	Source(ctx context.Context) models.SourceInfo
	// Icons lists the icon registry.
	Icons(ctx context.Context) []models.IconInfo
}

// BookingService accepts consultation requests from the booking form.
type BookingService interface {
	// Submit validates, records and forwards a booking request.
	Submit(ctx context.Context, req models.BookingRequest) (models.BookingConfirmation, error)
	// ListRecent returns the newest bookings for the admin inbox.
	ListRecent(ctx context.Context, limit int) ([]models.Booking, error)
	// ForwardPending re-sends up to limit bookings not yet delivered to the
	// webhook and returns how many were delivered.
	ForwardPending(ctx context.Context, limit int) (int, error)
}

// AuthService authenticates the clinic administrator.
type AuthService interface {
	// Login checks credentials and issues a bearer token.
	Login(ctx context.Context, credentials models.AdminCredentials) (models.Token, error)
	// ParseToken validates a bearer token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BookingServiceWrapper defines middleware composition for BookingService.
// Implementations wrap an existing BookingService to add behavior such as
// validation.
type BookingServiceWrapper interface {
	Wrap(BookingService) BookingService
}

// BookingObserver counts booking outcomes. internal/metrics implements it.
type BookingObserver interface {
	BookingOutcome(outcome string)
}

// IDGenerator issues booking ids.
type IDGenerator interface {
	Generate() string
}
