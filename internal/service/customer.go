// Package service contains the business logic for the SkyRoute records
// system. Services validate inputs, enforce business rules, and orchestrate
// repo calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/repo"
)

// title trims and title-cases free-text fields the way the directory stores
// them ("buenos aires" → "Buenos Aires"). Matching elsewhere (city identity)
// is byte-exact after this normalization.
func title(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

// CustomerService implements business logic for the customer directory.
type CustomerService struct {
	customers repo.CustomerRepo
}

// NewCustomerService constructs a CustomerService backed by the provided repo.
func NewCustomerService(customers repo.CustomerRepo) *CustomerService {
	return &CustomerService{customers: customers}
}

// Register validates and persists a new customer with their phone number.
// Format checks run before any storage call. Returns domain.ErrValidation
// for malformed input and domain.ErrConflict when the national ID is taken.
func (s *CustomerService) Register(ctx context.Context, name, surname, address, email, nationalID, phone string) (domain.Customer, error) {
	c := domain.Customer{
		NationalID: strings.TrimSpace(nationalID),
		Name:       title(name),
		Surname:    title(surname),
		Address:    title(address),
		Email:      strings.ToLower(strings.TrimSpace(email)),
	}
	phone = strings.TrimSpace(phone)

	switch {
	case c.Name == "":
		return domain.Customer{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	case c.Surname == "":
		return domain.Customer{}, fmt.Errorf("%w: surname is required", domain.ErrValidation)
	case c.Address == "":
		return domain.Customer{}, fmt.Errorf("%w: address is required", domain.ErrValidation)
	case !domain.ValidNationalID(c.NationalID):
		return domain.Customer{}, fmt.Errorf("%w: national ID must match 111.111.111", domain.ErrValidation)
	case !domain.ValidEmail(c.Email):
		return domain.Customer{}, fmt.Errorf("%w: email must look like name@example.com", domain.ErrValidation)
	case !domain.ValidPhone(phone):
		return domain.Customer{}, fmt.Errorf("%w: phone must match 111-1111111", domain.ErrValidation)
	}

	created, err := s.customers.Create(ctx, c, phone)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("service.CustomerService.Register: %w", err)
	}
	return created, nil
}

// Get returns a single customer by national ID.
// The format check runs before any storage call.
func (s *CustomerService) Get(ctx context.Context, nationalID string) (domain.Customer, error) {
	if !domain.ValidNationalID(nationalID) {
		return domain.Customer{}, fmt.Errorf("%w: national ID must match 111.111.111", domain.ErrValidation)
	}
	c, err := s.customers.GetByID(ctx, nationalID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("service.CustomerService.Get: %w", err)
	}
	return c, nil
}

// List returns the customer directory joined with phone numbers.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CustomerService) List(ctx context.Context) ([]domain.CustomerListing, error) {
	listings, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CustomerService.List: %w", err)
	}
	if listings == nil {
		return []domain.CustomerListing{}, nil
	}
	return listings, nil
}

// Update overwrites one attribute of an existing customer and returns the
// post-update record for confirmation display. nationalId and email values
// are re-validated; free-text values are title-cased.
func (s *CustomerService) Update(ctx context.Context, nationalID, field, value string) (domain.Customer, error) {
	f, err := domain.ParseCustomerField(field)
	if err != nil {
		return domain.Customer{}, err
	}

	switch f {
	case domain.CustomerFieldNationalID:
		value = strings.TrimSpace(value)
		if !domain.ValidNationalID(value) {
			return domain.Customer{}, fmt.Errorf("%w: national ID must match 111.111.111", domain.ErrValidation)
		}
	case domain.CustomerFieldEmail:
		value = strings.ToLower(strings.TrimSpace(value))
		if !domain.ValidEmail(value) {
			return domain.Customer{}, fmt.Errorf("%w: email must look like name@example.com", domain.ErrValidation)
		}
	default:
		value = title(value)
		if value == "" {
			return domain.Customer{}, fmt.Errorf("%w: %s is required", domain.ErrValidation, f)
		}
	}

	updated, err := s.customers.UpdateField(ctx, nationalID, f, value)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("service.CustomerService.Update: %w", err)
	}
	return updated, nil
}

// Deactivate marks a customer Inactive. There is no reactivation path.
// Repeated calls succeed; the state simply stays Inactive.
func (s *CustomerService) Deactivate(ctx context.Context, nationalID string) error {
	if !domain.ValidNationalID(nationalID) {
		return fmt.Errorf("%w: national ID must match 111.111.111", domain.ErrValidation)
	}
	if err := s.customers.Deactivate(ctx, nationalID); err != nil {
		return fmt.Errorf("service.CustomerService.Deactivate: %w", err)
	}
	return nil
}

// Delete removes a customer permanently. Irreversible — callers gate it
// behind an explicit confirmation.
func (s *CustomerService) Delete(ctx context.Context, nationalID string) error {
	if !domain.ValidNationalID(nationalID) {
		return fmt.Errorf("%w: national ID must match 111.111.111", domain.ErrValidation)
	}
	if err := s.customers.Delete(ctx, nationalID); err != nil {
		return fmt.Errorf("service.CustomerService.Delete: %w", err)
	}
	return nil
}
