package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// City carries the attributes a destination sells: place names and the base
// ticket cost. Cities are unique by (name, province, country) and are
// created lazily the first time a destination references them.
type City struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Province  string    `json:"province"`
	Country   string    `json:"country"`
	BaseCost  float64   `json:"base_cost"`
	CreatedAt time.Time `json:"created_at"`
}

// Destination is a sellable reference to a City. It carries no attributes of
// its own beyond the city it points to.
type Destination struct {
	ID        uuid.UUID `json:"id"`
	CityID    uuid.UUID `json:"city_id"`
	CreatedAt time.Time `json:"created_at"`
}

// DestinationView is the joined projection used by listings and purchase-time
// display: the destination identifier together with its city's attributes.
type DestinationView struct {
	ID       uuid.UUID `json:"id"`
	CityID   uuid.UUID `json:"city_id"`
	City     string    `json:"city"`
	Province string    `json:"province"`
	Country  string    `json:"country"`
	BaseCost float64   `json:"base_cost"`
}

// DestinationField names a mutable attribute of a destination's city.
// Edits apply to the City row, so they affect every destination sharing it.
type DestinationField string

const (
	DestinationFieldCity     DestinationField = "city"
	DestinationFieldProvince DestinationField = "province"
	DestinationFieldCountry  DestinationField = "country"
	DestinationFieldBaseCost DestinationField = "baseCost"
)

// ParseDestinationField maps a user-supplied field name to a DestinationField.
// Returns ErrValidation for anything outside the updatable set.
func ParseDestinationField(s string) (DestinationField, error) {
	switch DestinationField(s) {
	case DestinationFieldCity, DestinationFieldProvince,
		DestinationFieldCountry, DestinationFieldBaseCost:
		return DestinationField(s), nil
	}
	return "", fmt.Errorf("%w: unknown destination field %q", ErrValidation, s)
}
