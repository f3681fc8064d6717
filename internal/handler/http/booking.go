// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/httprate"

	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/utils"
	"github.com/MKhiriev/dental-site/models"
)

// submitBooking accepts the consultation form.
//
// Responses:
//   - 201 with models.BookingConfirmation.
//   - 400 with {"errors": {field: message}} for invalid input, or
//     {"error": ...} for a body that is not a JSON object.
//   - 429 when the client exceeded the booking rate limit.
//   - 5xx when no configured sink accepted the booking.
func (h *Handler) submitBooking(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.BookingRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg(errInvalidJSON.Error())
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	confirmation, err := h.services.BookingService.Submit(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitBooking").Msg("booking rejected")
		writeServiceError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, confirmation, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.submitBooking").Msg("error writing response")
	}
}

// bookingRateLimit limits booking submissions per client IP. A
// non-positive limit disables it.
func (h *Handler) bookingRateLimit() func(http.Handler) http.Handler {
	limit, window := h.cfg.BookingRateLimit, h.cfg.BookingRateWindow
	if limit <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().Str("remote_addr", r.RemoteAddr).Msg("booking rate limit exceeded")
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			utils.WriteError(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
		}),
	)
}
