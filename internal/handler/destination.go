package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skyroute/skyroute/internal/domain"
)

// CreateDestinationRequest is the body for POST /destinations.
type CreateDestinationRequest struct {
	City     string  `json:"city"`
	Province string  `json:"province"`
	Country  string  `json:"country"`
	BaseCost float64 `json:"base_cost"`
}

// CreateDestination handles POST /destinations.
// Registering an existing (city, province, country) triple reuses the city
// row; the response carries the stored cost either way.
func (s *Server) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var req CreateDestinationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	view, err := s.destinations.Register(r.Context(), req.City, req.Province, req.Country, req.BaseCost)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// ListDestinations handles GET /destinations.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	views, err := s.destinations.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// UpdateDestination handles PATCH /destinations/{id}.
func (s *Server) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "destination id must be a UUID")
		return
	}

	var req UpdateFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	view, err := s.destinations.Update(r.Context(), id, req.Field, req.Value)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "destination not found")
			return
		}
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// DeleteDestination handles DELETE /destinations/{id}.
func (s *Server) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "destination id must be a UUID")
		return
	}

	if err := s.destinations.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "destination not found")
		case errors.Is(err, domain.ErrConflict):
			writeError(w, http.StatusConflict, "conflict", "destination has sales on record")
		default:
			respondError(w, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
