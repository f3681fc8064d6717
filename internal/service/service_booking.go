// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/dental-site/internal/adapter"
	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/store"
	"github.com/MKhiriev/dental-site/internal/validators"
	"github.com/MKhiriev/dental-site/models"
)

// Confirmation shown by the booking form after a successful submission.
const (
	ConfirmationTitle       = "Consultation Request Submitted!"
	ConfirmationDescription = "Thank you! We'll contact you within 24 hours to confirm your appointment."
	ConfirmationRedirectTo  = "/"
	ConfirmationRedirectMs  = 2000
)

// MaxListLimit caps the page size of ListRecent.
const MaxListLimit = 200

type nopBookingObserver struct{}

func (nopBookingObserver) BookingOutcome(string) {}

// bookingService records accepted bookings. Both sinks are optional: a nil
// repository skips persistence, a nil forwarder skips the webhook. With
// neither the booking is only logged.
type bookingService struct {
	repository store.BookingRepository
	forwarder  adapter.BookingForwarder
	ids        IDGenerator
	observer   BookingObserver
	now        func() time.Time

	logger *logger.Logger
}

// NewBookingService constructs the core BookingService. Validation is
// added by wrapping it with NewBookingValidationService.
func NewBookingService(
	repository store.BookingRepository,
	forwarder adapter.BookingForwarder,
	ids IDGenerator,
	observer BookingObserver,
	logger *logger.Logger,
) BookingService {
	if observer == nil {
		observer = nopBookingObserver{}
	}
	return &bookingService{
		repository: repository,
		forwarder:  forwarder,
		ids:        ids,
		observer:   observer,
		now:        time.Now,
		logger:     logger,
	}
}

// Submit stores and forwards req, which must already be valid.
//
// The booking is accepted when at least one sink took it, or when no sink
// is configured. A webhook failure is not an error while a repository is
// configured: the booking stays pending and the forward job resends it.
func (s *bookingService) Submit(ctx context.Context, req models.BookingRequest) (models.BookingConfirmation, error) {
	log := logger.FromContext(ctx)

	booking := models.Booking{
		ID:             s.ids.Generate(),
		BookingRequest: validators.NormalizeBooking(req),
		CreatedAt:      s.now().UTC(),
	}

	log.Info().
		Str("booking_id", booking.ID).
		Any("booking", booking.Redacted()).
		Msg("booking request received")

	if s.repository != nil {
		if err := s.repository.Save(ctx, booking); err != nil {
			s.observer.BookingOutcome(OutcomeFailed)
			if store.IsTemporary(err) {
				log.Warn().Err(err).Str("func", "bookingService.Submit").Str("booking_id", booking.ID).Msg("booking database is temporarily unavailable")
			} else {
				log.Err(err).Str("func", "bookingService.Submit").Str("booking_id", booking.ID).Msg("booking was not saved")
			}
			return models.BookingConfirmation{}, fmt.Errorf("%w: %w", ErrBookingNotAccepted, err)
		}
	}

	if s.forwarder != nil {
		if err := s.forward(ctx, booking); err != nil && s.repository == nil {
			s.observer.BookingOutcome(OutcomeFailed)
			return models.BookingConfirmation{}, fmt.Errorf("%w: %w", ErrBookingNotAccepted, err)
		}
	}

	s.observer.BookingOutcome(OutcomeAccepted)

	return models.BookingConfirmation{
		ID:              booking.ID,
		Title:           ConfirmationTitle,
		Description:     ConfirmationDescription,
		RedirectTo:      ConfirmationRedirectTo,
		RedirectAfterMs: ConfirmationRedirectMs,
	}, nil
}

// forward delivers booking and marks it forwarded when stored.
func (s *bookingService) forward(ctx context.Context, booking models.Booking) error {
	log := logger.FromContext(ctx)

	if err := s.forwarder.Forward(ctx, booking); err != nil {
		s.observer.BookingOutcome(OutcomeForwardFailed)
		log.Warn().Err(err).Str("func", "bookingService.forward").Str("booking_id", booking.ID).Msg("booking was not forwarded")
		return err
	}
	s.observer.BookingOutcome(OutcomeForwarded)

	if s.repository != nil {
		if err := s.repository.MarkForwarded(ctx, s.now().UTC(), booking.ID); err != nil {
			// the forward job will resend it; receivers dedupe on X-Booking-ID
			log.Err(err).Str("func", "bookingService.forward").Str("booking_id", booking.ID).Msg("error marking booking forwarded")
		}
	}
	return nil
}

func (s *bookingService) ListRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	if s.repository == nil {
		return nil, ErrBookingsUnavailable
	}

	bookings, err := s.repository.ListRecent(ctx, clampLimit(limit))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "bookingService.ListRecent").Msg("error listing bookings")
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) ForwardPending(ctx context.Context, limit int) (int, error) {
	if s.repository == nil || s.forwarder == nil {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	pending, err := s.repository.ListUnforwarded(ctx, clampLimit(limit))
	if err != nil {
		log.Err(err).Str("func", "bookingService.ForwardPending").Msg("error listing pending bookings")
		return 0, fmt.Errorf("error listing pending bookings: %w", err)
	}

	delivered := make([]string, 0, len(pending))
	for _, booking := range pending {
		if ctx.Err() != nil {
			break
		}
		if err = s.forwarder.Forward(ctx, booking); err != nil {
			s.observer.BookingOutcome(OutcomeForwardFailed)
			log.Warn().Err(err).Str("booking_id", booking.ID).Msg("pending booking was not forwarded")
			continue
		}
		s.observer.BookingOutcome(OutcomeForwarded)
		delivered = append(delivered, booking.ID)
	}

	if len(delivered) == 0 {
		return 0, nil
	}
	if err = s.repository.MarkForwarded(ctx, s.now().UTC(), delivered...); err != nil {
		log.Err(err).Str("func", "bookingService.ForwardPending").Msg("error marking bookings forwarded")
		return 0, fmt.Errorf("error marking bookings forwarded: %w", err)
	}

	log.Info().Int("forwarded", len(delivered)).Int("pending", len(pending)).Msg("pending bookings forwarded")
	return len(delivered), nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
