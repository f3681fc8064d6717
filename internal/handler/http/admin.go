package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/utils"
	"github.com/MKhiriev/dental-site/models"
)

// defaultListLimit is used when the limit query parameter is absent.
const defaultListLimit = 50

type tokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresAt int64  `json:"expiresAt"`
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.AdminCredentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		log.Err(err).Msg(errInvalidJSON.Error())
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := tokenResponse{Token: token.String(), TokenType: "Bearer"}
	if token.ExpiresAt != nil {
		resp.ExpiresAt = token.ExpiresAt.Unix()
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.adminLogin").Msg("error writing response")
	}
}

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.WriteError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	bookings, err := h.services.BookingService.ListRecent(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBookings").Msg("error listing bookings")
		writeServiceError(w, err)
		return
	}

	admin, _ := utils.GetAdminLoginFromContext(r.Context())
	log.Info().Str("admin", admin).Int("count", len(bookings)).Msg("bookings listed")

	if _, err = utils.WriteJSON(w, bookings, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listBookings").Msg("error writing response")
	}
}
