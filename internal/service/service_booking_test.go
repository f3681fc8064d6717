package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/dental-site/internal/adapter"
	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/mock"
	"github.com/MKhiriev/dental-site/internal/store"
	"github.com/MKhiriev/dental-site/internal/validators"
	"github.com/MKhiriev/dental-site/models"
)

var fixedNow = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

type recordingObserver struct {
	outcomes []string
}

func (o *recordingObserver) BookingOutcome(outcome string) {
	o.outcomes = append(o.outcomes, outcome)
}

// newTestBookingSvc builds the core booking service with mocks. A nil
// repo or forwarder leaves that sink unconfigured.
func newTestBookingSvc(
	t *testing.T,
	repo store.BookingRepository,
	forwarder adapter.BookingForwarder,
	ids IDGenerator,
	observer BookingObserver,
) *bookingService {
	t.Helper()
	svc := NewBookingService(repo, forwarder, ids, observer, logger.Nop()).(*bookingService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		FullName:      "  Jane Doe ",
		Email:         "jane@example.com",
		Phone:         "+1 555 0100",
		Service:       models.BookingImplants,
		PreferredDate: "next week",
		Message:       " call after 5pm ",
	}
}

func expectedBooking() models.Booking {
	return models.Booking{
		ID: "booking-1",
		BookingRequest: models.BookingRequest{
			FullName:      "Jane Doe",
			Email:         "jane@example.com",
			Phone:         "+1 555 0100",
			Service:       models.BookingImplants,
			PreferredDate: "next week",
			Message:       "call after 5pm",
		},
		CreatedAt: fixedNow,
	}
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestBookingService_Submit_LoggingStub(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mock.NewMockIDGenerator(ctrl)
	ids.EXPECT().Generate().Return("booking-1")
	observer := &recordingObserver{}

	svc := newTestBookingSvc(t, nil, nil, ids, observer)

	got, err := svc.Submit(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmation{
		ID:              "booking-1",
		Title:           "Consultation Request Submitted!",
		Description:     "Thank you! We'll contact you within 24 hours to confirm your appointment.",
		RedirectTo:      "/",
		RedirectAfterMs: 2000,
	}, got)
	assert.Equal(t, []string{OutcomeAccepted}, observer.outcomes)
}

func TestBookingService_Submit_SavesAndForwards(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBookingRepository(ctrl)
	forwarder := mock.NewMockBookingForwarder(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	observer := &recordingObserver{}
	ctx := context.Background()

	gomock.InOrder(
		ids.EXPECT().Generate().Return("booking-1"),
		repo.EXPECT().Save(ctx, expectedBooking()).Return(nil),
		forwarder.EXPECT().Forward(ctx, expectedBooking()).Return(nil),
		repo.EXPECT().MarkForwarded(ctx, fixedNow, "booking-1").Return(nil),
	)

	svc := newTestBookingSvc(t, repo, forwarder, ids, observer)

	got, err := svc.Submit(ctx, validRequest())

	require.NoError(t, err)
	assert.Equal(t, "booking-1", got.ID)
	assert.Equal(t, []string{OutcomeForwarded, OutcomeAccepted}, observer.outcomes)
}

func TestBookingService_Submit_SaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBookingRepository(ctrl)
	forwarder := mock.NewMockBookingForwarder(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	observer := &recordingObserver{}

	ids.EXPECT().Generate().Return("booking-1")
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrTemporary)
	// no forward when nothing was stored

	svc := newTestBookingSvc(t, repo, forwarder, ids, observer)

	_, err := svc.Submit(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBookingNotAccepted)
	assert.ErrorIs(t, err, store.ErrTemporary)
	assert.Equal(t, []string{OutcomeFailed}, observer.outcomes)
}

func TestBookingService_Submit_ForwardFailsWithRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBookingRepository(ctrl)
	forwarder := mock.NewMockBookingForwarder(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	observer := &recordingObserver{}

	ids.EXPECT().Generate().Return("booking-1")
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	forwarder.EXPECT().Forward(gomock.Any(), gomock.Any()).Return(adapter.ErrWebhookUnavailable)

	svc := newTestBookingSvc(t, repo, forwarder, ids, observer)

	got, err := svc.Submit(context.Background(), validRequest())

	require.NoError(t, err, "stored booking stays pending for the forward job")
	assert.Equal(t, "booking-1", got.ID)
	assert.Equal(t, []string{OutcomeForwardFailed, OutcomeAccepted}, observer.outcomes)
}

func TestBookingService_Submit_ForwardFailsWithoutRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	forwarder := mock.NewMockBookingForwarder(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	observer := &recordingObserver{}

	ids.EXPECT().Generate().Return("booking-1")
	forwarder.EXPECT().Forward(gomock.Any(), gomock.Any()).Return(adapter.ErrWebhookRejected)

	svc := newTestBookingSvc(t, nil, forwarder, ids, observer)

	_, err := svc.Submit(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBookingNotAccepted)
	assert.ErrorIs(t, err, adapter.ErrWebhookRejected)
	assert.Equal(t, []string{OutcomeForwardFailed, OutcomeFailed}, observer.outcomes)
}

func TestBookingService_Submit_MarkForwardedErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBookingRepository(ctrl)
	forwarder := mock.NewMockBookingForwarder(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	ids.EXPECT().Generate().Return("booking-1")
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	forwarder.EXPECT().Forward(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().MarkForwarded(gomock.Any(), gomock.Any(), "booking-1").Return(errors.New("db down"))

	svc := newTestBookingSvc(t, repo, forwarder, ids, nil)

	_, err := svc.Submit(context.Background(), validRequest())

	require.NoError(t, err)
}

// ── ListRecent ───────────────────────────────────────────────────────────────

func TestBookingService_ListRecent(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"explicit", 10, 10},
		{"zero uses max", 0, MaxListLimit},
		{"negative uses max", -3, MaxListLimit},
		{"too large is capped", 10_000, MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockBookingRepository(ctrl)
			repo.EXPECT().ListRecent(gomock.Any(), tt.wantLimit).Return([]models.Booking{expectedBooking()}, nil)

			svc := newTestBookingSvc(t, repo, nil, nil, nil)

			got, err := svc.ListRecent(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}

func TestBookingService_ListRecent_NoRepository(t *testing.T) {
	svc := newTestBookingSvc(t, nil, nil, nil, nil)

	_, err := svc.ListRecent(context.Background(), 10)

	assert.ErrorIs(t, err, ErrBookingsUnavailable)
}

func TestBookingService_ListRecent_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBookingRepository(ctrl)
	repo.EXPECT().ListRecent(gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	svc := newTestBookingSvc(t, repo, nil, nil, nil)

	_, err := svc.ListRecent(context.Background(), 10)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── ForwardPending ───────────────────────────────────────────────────────────

func TestBookingService_ForwardPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBookingRepository(ctrl)
	forwarder := mock.NewMockBookingForwarder(ctrl)
	observer := &recordingObserver{}

	a := expectedBooking()
	b := expectedBooking()
	b.ID = "booking-2"
	c := expectedBooking()
	c.ID = "booking-3"

	repo.EXPECT().ListUnforwarded(gomock.Any(), 25).Return([]models.Booking{a, b, c}, nil)
	forwarder.EXPECT().Forward(gomock.Any(), a).Return(nil)
	forwarder.EXPECT().Forward(gomock.Any(), b).Return(adapter.ErrWebhookUnavailable)
	forwarder.EXPECT().Forward(gomock.Any(), c).Return(nil)
	repo.EXPECT().MarkForwarded(gomock.Any(), fixedNow, "booking-1", "booking-3").Return(nil)

	svc := newTestBookingSvc(t, repo, forwarder, nil, observer)

	n, err := svc.ForwardPending(context.Background(), 25)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{OutcomeForwarded, OutcomeForwardFailed, OutcomeForwarded}, observer.outcomes)
}

func TestBookingService_ForwardPending_NothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBookingRepository(ctrl)
	forwarder := mock.NewMockBookingForwarder(ctrl)

	repo.EXPECT().ListUnforwarded(gomock.Any(), gomock.Any()).Return([]models.Booking{}, nil)

	svc := newTestBookingSvc(t, repo, forwarder, nil, nil)

	n, err := svc.ForwardPending(context.Background(), 25)

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBookingService_ForwardPending_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBookingRepository(ctrl)

	svc := newTestBookingSvc(t, repo, nil, nil, nil)

	n, err := svc.ForwardPending(context.Background(), 25)

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBookingService_ForwardPending_Errors(t *testing.T) {
	t.Run("list fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockBookingRepository(ctrl)
		forwarder := mock.NewMockBookingForwarder(ctrl)
		repo.EXPECT().ListUnforwarded(gomock.Any(), gomock.Any()).Return(nil, store.ErrTemporary)

		svc := newTestBookingSvc(t, repo, forwarder, nil, nil)

		_, err := svc.ForwardPending(context.Background(), 25)

		assert.ErrorIs(t, err, store.ErrTemporary)
	})

	t.Run("mark fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockBookingRepository(ctrl)
		forwarder := mock.NewMockBookingForwarder(ctrl)
		repo.EXPECT().ListUnforwarded(gomock.Any(), gomock.Any()).Return([]models.Booking{expectedBooking()}, nil)
		forwarder.EXPECT().Forward(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().MarkForwarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

		svc := newTestBookingSvc(t, repo, forwarder, nil, nil)

		_, err := svc.ForwardPending(context.Background(), 25)

		assert.ErrorIs(t, err, store.ErrExecutingStatement)
	})
}

// ── Validation wrapper ───────────────────────────────────────────────────────

func TestBookingValidationService_RejectsInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockBookingService(ctrl)
	observer := &recordingObserver{}

	svc := NewBookingValidationService(observer).Wrap(inner)

	_, err := svc.Submit(context.Background(), models.BookingRequest{
		FullName: "J",
		Email:    "not-an-email",
		Phone:    "123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrInvalidBooking)

	var fieldErrs *validators.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, map[string]string{
		"fullName": "Name must be at least 2 characters",
		"email":    "Please enter a valid email address",
		"phone":    "Please enter a valid phone number",
		"service":  "Please select a service",
	}, fieldErrs.Fields)
	assert.Equal(t, []string{OutcomeInvalid}, observer.outcomes)
}

func TestBookingValidationService_PassesValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockBookingService(ctrl)
	req := validRequest()
	want := models.BookingConfirmation{ID: "booking-1"}

	inner.EXPECT().Submit(gomock.Any(), req).Return(want, nil)
	inner.EXPECT().ListRecent(gomock.Any(), 5).Return(nil, nil)
	inner.EXPECT().ForwardPending(gomock.Any(), 7).Return(3, nil)

	svc := NewBookingValidationService(nil).Wrap(inner)

	got, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.ListRecent(context.Background(), 5)
	require.NoError(t, err)

	n, err := svc.ForwardPending(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
