// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without Handler.Init.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("items"))
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Delete("/api/resource", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Get("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered GET", http.MethodGet, "/api/items", http.StatusOK},
		{"registered POST", http.MethodPost, "/api/items", http.StatusCreated},
		{"registered DELETE", http.MethodDelete, "/api/resource", http.StatusNoContent},
		{"unregistered PUT on known path", http.MethodPut, "/api/items", http.StatusNotFound},
		{"unregistered GET on known path", http.MethodGet, "/api/resource", http.StatusNotFound},
		{"unregistered method on param route", http.MethodPost, "/api/items/7", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	rec := serve(buildRouter(), httptest.NewRequest(http.MethodGet, "/api/items", nil))

	assert.Equal(t, "items", rec.Body.String())
}
