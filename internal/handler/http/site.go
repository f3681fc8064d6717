package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/utils"
)

func (h *Handler) getSite(w http.ResponseWriter, r *http.Request) {
	site := h.services.SiteService.Config(r.Context())

	if _, err := utils.WriteJSON(w, site, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSite").Msg("error writing response")
	}
}

func (h *Handler) getSiteSection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "section")

	section, err := h.services.SiteService.Section(r.Context(), name)
	if err != nil {
		log.Debug().Err(err).Str("section", name).Msg("site section not served")
		writeServiceError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, section, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getSiteSection").Msg("error writing response")
	}
}

func (h *Handler) getSiteSource(w http.ResponseWriter, r *http.Request) {
	source := h.services.SiteService.Source(r.Context())

	if _, err := utils.WriteJSON(w, source, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSiteSource").Msg("error writing response")
	}
}

func (h *Handler) getIcons(w http.ResponseWriter, r *http.Request) {
	icons := h.services.SiteService.Icons(r.Context())

	if _, err := utils.WriteJSON(w, icons, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getIcons").Msg("error writing response")
	}
}
