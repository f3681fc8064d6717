// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers accepted bookings to systems outside the site.
//
// The primary abstraction is [BookingForwarder], which decouples the
// service layer from the transport. The package ships an HTTP webhook
// implementation ([NewWebhookForwarder]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can tell a rejected booking
// ([ErrWebhookRejected]) from a receiver that is temporarily unavailable
// ([ErrWebhookUnavailable]).
package adapter

import (
	"context"

	"github.com/MKhiriev/dental-site/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/booking_forwarder_mock.go -package=mock

// BookingForwarder sends a booking to the clinic's intake system.
type BookingForwarder interface {
	// Forward delivers booking. A nil error means the receiver accepted
	// it; the booking may then be marked forwarded.
	Forward(ctx context.Context, booking models.Booking) error
}
