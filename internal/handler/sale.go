package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skyroute/skyroute/internal/domain"
)

// CreateSaleRequest is the body for POST /sales.
type CreateSaleRequest struct {
	NationalID    string    `json:"national_id"`
	DestinationID uuid.UUID `json:"destination_id"`
	TicketCount   int       `json:"ticket_count"`
}

// CancelSaleRequest is the body for POST /sales/{id}/cancel.
type CancelSaleRequest struct {
	NationalID string `json:"national_id"`
	Reason     string `json:"reason"`
}

// CreateSale handles POST /sales.
func (s *Server) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	sale, err := s.sales.Purchase(r.Context(), req.NationalID, req.DestinationID, req.TicketCount)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "customer or destination not found")
			return
		}
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sale)
}

// ListSales handles GET /sales?national_id=…&status=….
// Both query parameters are required; status must be Active or Cancelled.
func (s *Server) ListSales(w http.ResponseWriter, r *http.Request) {
	nationalID := r.URL.Query().Get("national_id")
	status := r.URL.Query().Get("status")
	if nationalID == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "national_id query parameter is required")
		return
	}

	sales, err := s.sales.List(r.Context(), nationalID, status)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

// CancelSale handles POST /sales/{id}/cancel.
// The sale must belong to the customer's active set and still be inside the
// 2-minute window; the reason is recorded with the cancellation.
func (s *Server) CancelSale(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "sale id must be a UUID")
		return
	}

	var req CancelSaleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	if err := s.sales.Cancel(r.Context(), req.NationalID, id, req.Reason); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
