package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		// site content
		r.Get("/api/site", h.getSite)
		r.Get("/api/site/source", h.getSiteSource)
		r.Get("/api/site/{section}", h.getSiteSection)
		r.Get("/api/icons", h.getIcons)
		r.Get("/api/version/", h.getServerVersion)

		// booking form
		r.With(h.bookingRateLimit()).Post("/api/bookings", h.submitBooking)

		// admin inbox
		if h.services.AuthService != nil {
			r.Post("/api/admin/login", h.adminLogin)
			r.With(h.auth).Get("/api/admin/bookings", h.listBookings)
		}
	})

	// promhttp compresses on its own
	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
