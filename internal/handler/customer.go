package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyroute/skyroute/internal/domain"
)

// CreateCustomerRequest is the body for POST /customers.
type CreateCustomerRequest struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Address    string `json:"address"`
	Email      string `json:"email"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
}

// UpdateFieldRequest is the body for the field-by-field PATCH endpoints.
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// CreateCustomer handles POST /customers.
func (s *Server) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	created, err := s.customers.Register(r.Context(), req.Name, req.Surname, req.Address, req.Email, req.NationalID, req.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeError(w, http.StatusConflict, "conflict", "national ID is already registered")
			return
		}
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListCustomers handles GET /customers.
func (s *Server) ListCustomers(w http.ResponseWriter, r *http.Request) {
	listings, err := s.customers.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// GetCustomer handles GET /customers/{nationalID}.
func (s *Server) GetCustomer(w http.ResponseWriter, r *http.Request) {
	nationalID := chi.URLParam(r, "nationalID")

	customer, err := s.customers.Get(r.Context(), nationalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "customer not found")
			return
		}
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// UpdateCustomer handles PATCH /customers/{nationalID}.
// The body names one updatable field and its new value; the response is the
// post-update record for confirmation display.
func (s *Server) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	nationalID := chi.URLParam(r, "nationalID")

	var req UpdateFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	updated, err := s.customers.Update(r.Context(), nationalID, req.Field, req.Value)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "customer not found")
			return
		}
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeactivateCustomer handles POST /customers/{nationalID}/deactivate.
func (s *Server) DeactivateCustomer(w http.ResponseWriter, r *http.Request) {
	nationalID := chi.URLParam(r, "nationalID")

	if err := s.customers.Deactivate(r.Context(), nationalID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "customer not found")
			return
		}
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /customers/{nationalID}.
func (s *Server) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	nationalID := chi.URLParam(r, "nationalID")

	if err := s.customers.Delete(r.Context(), nationalID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "customer not found")
		case errors.Is(err, domain.ErrConflict):
			writeError(w, http.StatusConflict, "conflict", "customer has sales on record")
		default:
			respondError(w, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
