package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dental-site/internal/adapter"
	"github.com/MKhiriev/dental-site/internal/service"
	"github.com/MKhiriev/dental-site/internal/store"
	"github.com/MKhiriev/dental-site/internal/utils"
	"github.com/MKhiriev/dental-site/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidBooking:     http.StatusBadRequest,
	validators.ErrInvalidCredentials: http.StatusBadRequest,

	service.ErrUnknownSection:       http.StatusNotFound,
	service.ErrSectionNotConfigured: http.StatusNotFound,
	service.ErrWrongCredentials:     http.StatusUnauthorized,
	service.ErrTokenIsExpired:       http.StatusUnauthorized,
	service.ErrInvalidToken:         http.StatusUnauthorized,
	service.ErrBookingsUnavailable:  http.StatusServiceUnavailable,

	adapter.ErrWebhookUnavailable: http.StatusBadGateway,
	adapter.ErrWebhookRejected:    http.StatusBadGateway,

	store.ErrTemporary:          http.StatusServiceUnavailable,
	store.ErrDuplicateBooking:   http.StatusConflict,
	store.ErrBookingNotSaved:    http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusPriority fixes the lookup order for errors matching several
// targets, e.g. a temporary store failure wrapped in ErrExecutingStatement.
var statusPriority = []error{
	validators.ErrInvalidBooking,
	validators.ErrInvalidCredentials,
	service.ErrUnknownSection,
	service.ErrSectionNotConfigured,
	service.ErrWrongCredentials,
	service.ErrTokenIsExpired,
	service.ErrInvalidToken,
	service.ErrBookingsUnavailable,
	store.ErrTemporary,
	store.ErrDuplicateBooking,
	adapter.ErrWebhookUnavailable,
	adapter.ErrWebhookRejected,
	store.ErrBookingNotSaved,
	store.ErrBuildingSQLQuery,
	store.ErrExecutingQuery,
	store.ErrExecutingStatement,
	store.ErrScanningRows,
}

func statusFromError(err error) int {
	for _, target := range statusPriority {
		if errors.Is(err, target) {
			return errorStatusMap[target]
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError responds with the status mapped from err. Validation
// failures are answered with {"errors": {field: message}}, everything else
// with {"error": message}. Server-side failures never leak err's text.
func writeServiceError(w http.ResponseWriter, err error) {
	var fieldErrs *validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		_, _ = utils.WriteJSON(w, map[string]map[string]string{"errors": fieldErrs.Fields}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = publicMessage(err)
	}
	utils.WriteError(w, message, status)
}

// publicMessage returns the text of the first known sentinel err wraps.
func publicMessage(err error) string {
	for _, target := range statusPriority {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
