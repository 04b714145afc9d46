package handlers

import (
	"net/http"
)

// HomeResponse describes the service
// swagger:model HomeResponse
type HomeResponse struct {
	// Service name
	// default: library-service
	Service string `json:"service"`

	// Build version
	Version string `json:"version"`

	// Available endpoints
	Endpoints []string `json:"endpoints"`
}

var endpoints = []string{
	"GET /books", "POST /books", "GET /books/{id}", "PATCH /books/{id}",
	"GET /users", "POST /users", "GET /users/{id}",
	"GET /genres", "POST /genres",
	"POST /borrow", "PATCH /return/{id}", "PUT /return/{id}",
	"GET /borrows", "GET /borrows/{id}", "GET /borrowed-books",
	"GET /ratings", "POST /ratings", "GET /ratings/{id}",
	"GET /metrics", "GET /swagger/",
}

// NewHomeHandler returns an HTTP handler that describes the service.
// @Summary Service banner
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.HomeResponse
// @Router / [get]
func NewHomeHandler(version string) http.HandlerFunc {
	resp := HomeResponse{Service: "library-service", Version: version, Endpoints: endpoints}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
