package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/dental-site/internal/service"
	"github.com/MKhiriev/dental-site/internal/validators"
	"github.com/MKhiriev/dental-site/models"
)

func adminToken(signed string, expiresAt time.Time) models.Token {
	return models.Token{
		SignedString:     signed,
		Login:            "frontdesk",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
	}
}

// ── POST /api/admin/login ────────────────────────────────────────────────────

func TestAdminLogin_Success(t *testing.T) {
	m, svcs := newTestServices(t, true)
	expires := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	creds := models.AdminCredentials{Login: "frontdesk", Password: "secret"}
	m.auth.EXPECT().Login(gomock.Any(), creds).Return(adminToken("signed.jwt.value", expires), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"login":"frontdesk","password":"secret"}`))
	rec := serve(newTestHandler(svcs).Init(), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.value", rec.Header().Get("Authorization"))
	assert.JSONEq(t, fmt.Sprintf(`{"token":"signed.jwt.value","tokenType":"Bearer","expiresAt":%d}`, expires.Unix()), rec.Body.String())
}

func TestAdminLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "wrong credentials",
			err:        service.ErrWrongCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"wrong login or password"}`,
		},
		{
			name:       "missing fields",
			err:        fmt.Errorf("error during credentials validation: %w", validationError(t)),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":{"login":"Login is required","password":"Password is required"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svcs := newTestServices(t, true)
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{}`))
			rec := serve(newTestHandler(svcs).Init(), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func validationError(t *testing.T) error {
	t.Helper()
	err := validators.NewBookingValidator().Validate(t.Context(), models.AdminCredentials{})
	require.Error(t, err)
	return err
}

// ── GET /api/admin/bookings ──────────────────────────────────────────────────

func authorizedListRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer good-token")
	return req
}

func expectValidToken(m *testServices) {
	m.auth.EXPECT().ParseToken(gomock.Any(), "good-token").Return(models.Token{Login: "frontdesk"}, nil)
}

func TestListBookings(t *testing.T) {
	m, svcs := newTestServices(t, true)
	expectValidToken(m)
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	m.booking.EXPECT().ListRecent(gomock.Any(), 5).Return([]models.Booking{{
		ID: "booking-1",
		BookingRequest: models.BookingRequest{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+1 555 0100",
			Service:  models.BookingImplants,
		},
		CreatedAt: created,
	}}, nil)

	rec := serve(newTestHandler(svcs).Init(), authorizedListRequest("/api/admin/bookings?limit=5"))

	require.Equal(t, http.StatusOK, rec.Code)
	// the inbox shows contact data unredacted
	assert.Contains(t, rec.Body.String(), `"email":"jane@example.com"`)
	assert.Contains(t, rec.Body.String(), `"phone":"+1 555 0100"`)
	assert.Contains(t, rec.Body.String(), `"createdAt":"2026-10-01T09:00:00Z"`)
}

func TestListBookings_DefaultLimit(t *testing.T) {
	m, svcs := newTestServices(t, true)
	expectValidToken(m)
	m.booking.EXPECT().ListRecent(gomock.Any(), defaultListLimit).Return([]models.Booking{}, nil)

	rec := serve(newTestHandler(svcs).Init(), authorizedListRequest("/api/admin/bookings"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListBookings_BadLimit(t *testing.T) {
	for _, limit := range []string{"0", "-1", "ten"} {
		t.Run(limit, func(t *testing.T) {
			m, svcs := newTestServices(t, true)
			expectValidToken(m)

			rec := serve(newTestHandler(svcs).Init(), authorizedListRequest("/api/admin/bookings?limit="+limit))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListBookings_NoStorage(t *testing.T) {
	m, svcs := newTestServices(t, true)
	expectValidToken(m)
	m.booking.EXPECT().ListRecent(gomock.Any(), gomock.Any()).Return(nil, service.ErrBookingsUnavailable)

	rec := serve(newTestHandler(svcs).Init(), authorizedListRequest("/api/admin/bookings"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
