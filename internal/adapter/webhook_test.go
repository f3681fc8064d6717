// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dental-site/internal/config"
	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/utils"
	"github.com/MKhiriev/dental-site/models"
)

// newTestForwarder creates a webhookForwarder pointed at the test server.
func newTestForwarder(t *testing.T, serverURL, signingKey string) *webhookForwarder {
	t.Helper()

	f, err := NewWebhookForwarder(config.Adapter{
		WebhookURL:     serverURL,
		RequestTimeout: time.Second,
		SigningKey:     signingKey,
	}, logger.Nop())
	require.NoError(t, err)

	wf := f.(*webhookForwarder)
	wf.now = func() time.Time { return time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC) }
	return wf
}

func testBooking() models.Booking {
	return models.Booking{
		ID: "booking-1",
		BookingRequest: models.BookingRequest{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "5550100",
			Service:  models.BookingVeneers,
		},
		CreatedAt: time.Date(2026, 10, 1, 11, 59, 0, 0, time.UTC),
	}
}

// ── NewWebhookForwarder ─────────────────────────────────────────────────────

func TestNewWebhookForwarder_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "/hooks", "hooks.example.com", "://bad"} {
		t.Run(raw, func(t *testing.T) {
			_, err := NewWebhookForwarder(config.Adapter{WebhookURL: raw}, logger.Nop())
			assert.ErrorIs(t, err, ErrInvalidWebhookURL)
		})
	}
}

// ── Forward ─────────────────────────────────────────────────────────────────

func TestForward_Success(t *testing.T) {
	var received WebhookPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/hooks/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "booking-1", r.Header.Get(HeaderBookingID))
		assert.Equal(t, EventBookingCreated, r.Header.Get(HeaderEvent))
		assert.Empty(t, r.Header.Get(HeaderSignature))
		assert.Empty(t, r.Header.Get(HeaderTraceID))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	f := newTestForwarder(t, srv.URL+"/hooks/bookings", "")

	err := f.Forward(context.Background(), testBooking())

	require.NoError(t, err)
	assert.Equal(t, EventBookingCreated, received.Event)
	assert.Equal(t, "booking-1", received.Booking.ID)
	assert.Equal(t, "jane@example.com", received.Booking.Email)
	assert.Equal(t, models.BookingVeneers, received.Booking.Service)
	assert.True(t, received.SentAt.Equal(time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)))
}

func TestForward_SignsBody(t *testing.T) {
	const key = "hook-secret"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		assert.True(t, utils.VerifySignature(body, r.Header.Get(HeaderSignature), key))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := newTestForwarder(t, srv.URL, key)

	require.NoError(t, f.Forward(context.Background(), testBooking()))
}

func TestForward_PropagatesTraceID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(HeaderTraceID)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := newTestForwarder(t, srv.URL, "")
	ctx := context.WithValue(context.Background(), utils.TraceIDCtxKey, "trace-42")

	require.NoError(t, f.Forward(ctx, testBooking()))
	assert.Equal(t, "trace-42", got)
}

func TestForward_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, ErrWebhookRejected},
		{"unauthorized", http.StatusUnauthorized, ErrWebhookRejected},
		{"not found", http.StatusNotFound, ErrWebhookRejected},
		{"too many requests", http.StatusTooManyRequests, ErrWebhookUnavailable},
		{"internal server error", http.StatusInternalServerError, ErrWebhookUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrWebhookUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			f := newTestForwarder(t, srv.URL, "")

			err := f.Forward(context.Background(), testBooking())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestForward_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f, err := NewWebhookForwarder(config.Adapter{
		WebhookURL:     srv.URL,
		RequestTimeout: time.Second,
		RetryCount:     1,
	}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, f.Forward(context.Background(), testBooking()))
	assert.Equal(t, int32(2), calls.Load())
}

func TestForward_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := newTestForwarder(t, url, "")

	err := f.Forward(context.Background(), testBooking())

	assert.ErrorIs(t, err, ErrWebhookUnavailable)
}

func TestForward_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newTestForwarder(t, srv.URL, "")

	err := f.Forward(ctx, testBooking())

	assert.ErrorIs(t, err, ErrWebhookUnavailable)
}
