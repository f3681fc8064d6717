package store

import (
	"context"
	"time"

	"github.com/MKhiriev/dental-site/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BookingRepository persists consultation requests.
type BookingRepository interface {
	// Save inserts a new booking.
	Save(ctx context.Context, booking models.Booking) error
	// ListRecent returns up to limit bookings, newest first.
	ListRecent(ctx context.Context, limit int) ([]models.Booking, error)
	// ListUnforwarded returns up to limit bookings not yet delivered to
	// the webhook, oldest first.
	ListUnforwarded(ctx context.Context, limit int) ([]models.Booking, error)
	// MarkForwarded records delivery time at for the given bookings.
	MarkForwarded(ctx context.Context, at time.Time, ids ...string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
