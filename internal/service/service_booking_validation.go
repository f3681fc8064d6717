package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dental-site/internal/validators"
	"github.com/MKhiriev/dental-site/models"
)

// BookingValidationService rejects invalid booking requests before they
// reach the wrapped BookingService.
type BookingValidationService struct {
	inner     BookingService
	validator validators.Validator
	observer  BookingObserver
}

func NewBookingValidationService(observer BookingObserver) BookingServiceWrapper {
	if observer == nil {
		observer = nopBookingObserver{}
	}
	return &BookingValidationService{
		validator: validators.NewBookingValidator(),
		observer:  observer,
	}
}

// Submit validates every form field. The returned error wraps
// *validators.FieldErrors with one message per invalid field.
func (v *BookingValidationService) Submit(ctx context.Context, req models.BookingRequest) (models.BookingConfirmation, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		v.observer.BookingOutcome(OutcomeInvalid)
		return models.BookingConfirmation{}, fmt.Errorf("error during booking validation: %w", err)
	}

	return v.inner.Submit(ctx, req)
}

func (v *BookingValidationService) ListRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	return v.inner.ListRecent(ctx, limit)
}

func (v *BookingValidationService) ForwardPending(ctx context.Context, limit int) (int, error) {
	return v.inner.ForwardPending(ctx, limit)
}

func (v *BookingValidationService) Wrap(wrapped BookingService) BookingService {
	v.inner = wrapped
	return v
}
