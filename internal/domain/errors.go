package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. malformed national ID, non-positive ticket count).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write collides with an existing record:
// registering a national ID that is already on file, or deleting a customer
// whose sales are still in the ledger.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrInactiveCustomer is returned when a purchase is attempted for a
// customer whose status is Inactive.
var ErrInactiveCustomer = errors.New("customer is inactive")

// ErrWindowExpired is returned when a cancellation is attempted after the
// 2-minute window following the purchase has closed.
var ErrWindowExpired = errors.New("cancellation window expired")

// ErrInvalidSelection is returned when the sale chosen for cancellation is
// not among the customer's active sales.
var ErrInvalidSelection = errors.New("invalid selection")
