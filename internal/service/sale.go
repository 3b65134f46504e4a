package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/repo"
)

// SaleService implements business logic for the sales ledger. It holds the
// customer and destination repos because a purchase is gated on the
// customer's status and the destination's existence.
type SaleService struct {
	sales        repo.SaleRepo
	customers    repo.CustomerRepo
	destinations repo.DestinationRepo
}

// NewSaleService constructs a SaleService backed by the provided repos.
func NewSaleService(sales repo.SaleRepo, customers repo.CustomerRepo, destinations repo.DestinationRepo) *SaleService {
	return &SaleService{sales: sales, customers: customers, destinations: destinations}
}

// ListDestinations is the purchase-time projection of destinations and
// prices. Always returns a non-nil slice.
func (s *SaleService) ListDestinations(ctx context.Context) ([]domain.DestinationView, error) {
	views, err := s.destinations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SaleService.ListDestinations: %w", err)
	}
	if views == nil {
		return []domain.DestinationView{}, nil
	}
	return views, nil
}

// Purchase records a ticket sale for an Active customer.
// Returns domain.ErrValidation on a malformed national ID or non-positive
// ticket count, domain.ErrNotFound when the customer or destination is
// absent, and domain.ErrInactiveCustomer when the customer cannot buy.
func (s *SaleService) Purchase(ctx context.Context, nationalID string, destinationID uuid.UUID, ticketCount int) (domain.Sale, error) {
	if !domain.ValidNationalID(nationalID) {
		return domain.Sale{}, fmt.Errorf("%w: national ID must match 111.111.111", domain.ErrValidation)
	}
	if ticketCount < 1 {
		return domain.Sale{}, fmt.Errorf("%w: ticket count must be at least 1", domain.ErrValidation)
	}

	customer, err := s.customers.GetByID(ctx, nationalID)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("service.SaleService.Purchase: customer: %w", err)
	}
	if customer.Status == domain.CustomerInactive {
		return domain.Sale{}, fmt.Errorf("service.SaleService.Purchase: %w", domain.ErrInactiveCustomer)
	}

	if _, err := s.destinations.GetByID(ctx, destinationID); err != nil {
		return domain.Sale{}, fmt.Errorf("service.SaleService.Purchase: destination: %w", err)
	}

	sale, err := s.sales.Create(ctx, domain.Sale{
		DestinationID: destinationID,
		TicketCount:   ticketCount,
		NationalID:    nationalID,
	})
	if err != nil {
		return domain.Sale{}, fmt.Errorf("service.SaleService.Purchase: %w", err)
	}
	return sale, nil
}

// ListActive returns the customer's Active sales — the selection set offered
// for cancellation. Always returns a non-nil slice.
func (s *SaleService) ListActive(ctx context.Context, nationalID string) ([]domain.Sale, error) {
	sales, err := s.sales.ListByCustomer(ctx, nationalID, domain.SaleActive)
	if err != nil {
		return nil, fmt.Errorf("service.SaleService.ListActive: %w", err)
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}

// List returns the customer's sales matching the status filter.
// Returns domain.ErrValidation when the filter is not Active or Cancelled.
func (s *SaleService) List(ctx context.Context, nationalID, statusFilter string) ([]domain.Sale, error) {
	status, err := domain.ParseSaleStatus(statusFilter)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.ListByCustomer(ctx, nationalID, status)
	if err != nil {
		return nil, fmt.Errorf("service.SaleService.List: %w", err)
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}

// Cancel reverses a recent sale and records why.
//   - The sale must be among the customer's Active sales
//     (domain.ErrInvalidSelection otherwise).
//   - Less than 2 minutes must have elapsed since purchase; an age of
//     exactly 2:00 or more is rejected (domain.ErrWindowExpired).
//   - The reason must be non-blank (domain.ErrValidation).
//
// The status flip and the reason row commit together, so the sale stays
// Active whenever anything here fails.
func (s *SaleService) Cancel(ctx context.Context, nationalID string, saleID uuid.UUID, reason string) error {
	actives, err := s.sales.ListByCustomer(ctx, nationalID, domain.SaleActive)
	if err != nil {
		return fmt.Errorf("service.SaleService.Cancel: %w", err)
	}

	var sale *domain.Sale
	for i := range actives {
		if actives[i].ID == saleID {
			sale = &actives[i]
			break
		}
	}
	if sale == nil {
		return fmt.Errorf("service.SaleService.Cancel: sale is not among the customer's active sales: %w", domain.ErrInvalidSelection)
	}

	if time.Since(sale.PurchasedAt) >= domain.CancelWindow {
		return fmt.Errorf("service.SaleService.Cancel: more than %s since purchase: %w", domain.CancelWindow, domain.ErrWindowExpired)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: cancellation reason is required", domain.ErrValidation)
	}

	if err := s.sales.Cancel(ctx, saleID, reason); err != nil {
		return fmt.Errorf("service.SaleService.Cancel: %w", err)
	}
	return nil
}
