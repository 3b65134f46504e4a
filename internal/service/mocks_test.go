package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each method is a
// function field — set only the ones your test needs. This is idiomatic Go:
// no mock generation library required for simple cases.

type mockCustomerRepo struct {
	create      func(ctx context.Context, c domain.Customer, phone string) (domain.Customer, error)
	getByID     func(ctx context.Context, nationalID string) (domain.Customer, error)
	list        func(ctx context.Context) ([]domain.CustomerListing, error)
	updateField func(ctx context.Context, nationalID string, field domain.CustomerField, value string) (domain.Customer, error)
	deactivate  func(ctx context.Context, nationalID string) error
	delete      func(ctx context.Context, nationalID string) error
}

func (m *mockCustomerRepo) Create(ctx context.Context, c domain.Customer, phone string) (domain.Customer, error) {
	return m.create(ctx, c, phone)
}
func (m *mockCustomerRepo) GetByID(ctx context.Context, nationalID string) (domain.Customer, error) {
	return m.getByID(ctx, nationalID)
}
func (m *mockCustomerRepo) List(ctx context.Context) ([]domain.CustomerListing, error) {
	return m.list(ctx)
}
func (m *mockCustomerRepo) UpdateField(ctx context.Context, nationalID string, field domain.CustomerField, value string) (domain.Customer, error) {
	return m.updateField(ctx, nationalID, field, value)
}
func (m *mockCustomerRepo) Deactivate(ctx context.Context, nationalID string) error {
	return m.deactivate(ctx, nationalID)
}
func (m *mockCustomerRepo) Delete(ctx context.Context, nationalID string) error {
	return m.delete(ctx, nationalID)
}

var _ repo.CustomerRepo = (*mockCustomerRepo)(nil)

type mockDestinationRepo struct {
	create  func(ctx context.Context, city domain.City) (domain.DestinationView, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.DestinationView, error)
	list    func(ctx context.Context) ([]domain.DestinationView, error)
	update  func(ctx context.Context, id uuid.UUID, field domain.DestinationField, text string, cost float64) (domain.DestinationView, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockDestinationRepo) Create(ctx context.Context, city domain.City) (domain.DestinationView, error) {
	return m.create(ctx, city)
}
func (m *mockDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.DestinationView, error) {
	return m.getByID(ctx, id)
}
func (m *mockDestinationRepo) List(ctx context.Context) ([]domain.DestinationView, error) {
	return m.list(ctx)
}
func (m *mockDestinationRepo) Update(ctx context.Context, id uuid.UUID, field domain.DestinationField, text string, cost float64) (domain.DestinationView, error) {
	return m.update(ctx, id, field, text, cost)
}
func (m *mockDestinationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.DestinationRepo = (*mockDestinationRepo)(nil)

type mockSaleRepo struct {
	create         func(ctx context.Context, sale domain.Sale) (domain.Sale, error)
	listByCustomer func(ctx context.Context, nationalID string, status domain.SaleStatus) ([]domain.Sale, error)
	cancel         func(ctx context.Context, saleID uuid.UUID, reason string) error
}

func (m *mockSaleRepo) Create(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	return m.create(ctx, sale)
}
func (m *mockSaleRepo) ListByCustomer(ctx context.Context, nationalID string, status domain.SaleStatus) ([]domain.Sale, error) {
	return m.listByCustomer(ctx, nationalID, status)
}
func (m *mockSaleRepo) Cancel(ctx context.Context, saleID uuid.UUID, reason string) error {
	return m.cancel(ctx, saleID, reason)
}

var _ repo.SaleRepo = (*mockSaleRepo)(nil)
