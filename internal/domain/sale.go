package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CancelWindow is how long after purchase a sale may still be cancelled.
// A sale whose age is CancelWindow or more can no longer be reversed.
const CancelWindow = 2 * time.Minute

// SaleStatus is the lifecycle state of a sale.
// The only transition is Active → Cancelled, and only within CancelWindow.
type SaleStatus string

const (
	SaleActive    SaleStatus = "Active"
	SaleCancelled SaleStatus = "Cancelled"
)

// ParseSaleStatus maps a user-supplied status filter to a SaleStatus.
// Returns ErrValidation for anything other than the two known statuses.
func ParseSaleStatus(s string) (SaleStatus, error) {
	switch SaleStatus(s) {
	case SaleActive, SaleCancelled:
		return SaleStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown sale status %q", ErrValidation, s)
}

// Sale records one ticket purchase. PurchasedAt is set by the database clock
// at insert time and anchors the cancellation window.
type Sale struct {
	ID            uuid.UUID  `json:"id"`
	PurchasedAt   time.Time  `json:"purchased_at"`
	DestinationID uuid.UUID  `json:"destination_id"`
	TicketCount   int        `json:"ticket_count"`
	NationalID    string     `json:"national_id"`
	Status        SaleStatus `json:"status"`
}

// CancellationReason is the free-text record of why a sale was cancelled.
// Exactly one exists per cancelled sale, written in the same transaction
// that flips the sale's status.
type CancellationReason struct {
	ID        uuid.UUID `json:"id"`
	SaleID    uuid.UUID `json:"sale_id"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
