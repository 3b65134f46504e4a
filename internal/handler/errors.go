package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/skyroute/skyroute/internal/domain"
)

// ErrorDetail is the machine-readable error payload.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope every error reply uses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an ErrorResponse with the given status, code, and message.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// decodeJSON decodes the request body into dst, rejecting unknown fields so
// clients notice typos in field names.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// respondError maps a service error to an HTTP status and error code.
// The sentinel set is the whole error taxonomy; anything unmatched is a
// storage or programming failure and surfaces as a generic 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		// Handlers usually map this themselves with a message naming what
		// was looked up; this is the fallback.
		writeError(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", "conflicting record")
	case errors.Is(err, domain.ErrInactiveCustomer):
		writeError(w, http.StatusConflict, "inactive_customer", "customer is inactive")
	case errors.Is(err, domain.ErrWindowExpired):
		writeError(w, http.StatusConflict, "window_expired", "more than 2 minutes have passed since purchase")
	case errors.Is(err, domain.ErrInvalidSelection):
		writeError(w, http.StatusConflict, "invalid_selection", "sale is not among the customer's active sales")
	default:
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.CustomerService.Register: validation error: name is
// required" → "name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
