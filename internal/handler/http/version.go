package http

import (
	"net/http"

	"github.com/MKhiriev/dental-site/internal/utils"
	"github.com/MKhiriev/dental-site/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, _ = utils.WriteJSON(w, models.AppInfo{Version: serverVersion}, http.StatusOK)
}
