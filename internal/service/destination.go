package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/repo"
)

// DestinationService implements business logic for the destination catalog.
type DestinationService struct {
	destinations repo.DestinationRepo
}

// NewDestinationService constructs a DestinationService backed by the
// provided repo.
func NewDestinationService(destinations repo.DestinationRepo) *DestinationService {
	return &DestinationService{destinations: destinations}
}

// Register creates a destination, reusing the city when an exact
// (name, province, country) match already exists. The base cost applies only
// when the city is created; an existing city keeps its stored cost.
func (s *DestinationService) Register(ctx context.Context, cityName, province, country string, baseCost float64) (domain.DestinationView, error) {
	city := domain.City{
		Name:     title(cityName),
		Province: title(province),
		Country:  title(country),
		BaseCost: baseCost,
	}

	switch {
	case city.Name == "":
		return domain.DestinationView{}, fmt.Errorf("%w: city is required", domain.ErrValidation)
	case city.Province == "":
		return domain.DestinationView{}, fmt.Errorf("%w: province is required", domain.ErrValidation)
	case city.Country == "":
		return domain.DestinationView{}, fmt.Errorf("%w: country is required", domain.ErrValidation)
	case city.BaseCost <= 0:
		return domain.DestinationView{}, fmt.Errorf("%w: base cost must be greater than zero", domain.ErrValidation)
	}

	view, err := s.destinations.Create(ctx, city)
	if err != nil {
		return domain.DestinationView{}, fmt.Errorf("service.DestinationService.Register: %w", err)
	}
	return view, nil
}

// List returns every destination with its city and price.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DestinationService) List(ctx context.Context) ([]domain.DestinationView, error) {
	views, err := s.destinations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.List: %w", err)
	}
	if views == nil {
		return []domain.DestinationView{}, nil
	}
	return views, nil
}

// Update mutates one attribute of the destination's city and returns the
// refreshed view. The change is visible to every destination sharing the
// city. baseCost values are parsed from the string form used by both front
// ends; name fields are title-cased.
func (s *DestinationService) Update(ctx context.Context, id uuid.UUID, field, value string) (domain.DestinationView, error) {
	f, err := domain.ParseDestinationField(field)
	if err != nil {
		return domain.DestinationView{}, err
	}

	var cost float64
	if f == domain.DestinationFieldBaseCost {
		cost, err = strconv.ParseFloat(value, 64)
		if err != nil || cost <= 0 {
			return domain.DestinationView{}, fmt.Errorf("%w: base cost must be a number greater than zero", domain.ErrValidation)
		}
	} else {
		value = title(value)
		if value == "" {
			return domain.DestinationView{}, fmt.Errorf("%w: %s is required", domain.ErrValidation, f)
		}
	}

	view, err := s.destinations.Update(ctx, id, f, value, cost)
	if err != nil {
		return domain.DestinationView{}, fmt.Errorf("service.DestinationService.Update: %w", err)
	}
	return view, nil
}

// Delete removes a destination and, when it held the last reference, its
// city. Irreversible — callers gate it behind an explicit confirmation.
func (s *DestinationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.destinations.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DestinationService.Delete: %w", err)
	}
	return nil
}
