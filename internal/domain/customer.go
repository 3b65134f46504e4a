// Package domain contains the core data types for the SkyRoute commercial
// records system. This package has zero external dependencies beyond uuid
// and is imported by every other internal package (repo, service, handler,
// console).
package domain

import (
	"fmt"
	"regexp"
	"time"
)

// CustomerStatus is the lifecycle state of a customer record.
// The only transition is Active → Inactive; there is no reactivation path.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "Active"
	CustomerInactive CustomerStatus = "Inactive"
)

// Customer represents an airline customer.
// Identity is the national ID, a fixed-format government identifier.
type Customer struct {
	NationalID string         `json:"national_id"`
	Name       string         `json:"name"`
	Surname    string         `json:"surname"`
	Address    string         `json:"address"`
	Email      string         `json:"email"`
	Status     CustomerStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// CustomerListing is one row of the customer directory listing: the customer
// joined with their phone number. Customers without a phone row do not
// appear — registration creates both rows together, so none should exist.
type CustomerListing struct {
	Name       string         `json:"name"`
	Surname    string         `json:"surname"`
	NationalID string         `json:"national_id"`
	Email      string         `json:"email"`
	Address    string         `json:"address"`
	Phone      string         `json:"phone"`
	Status     CustomerStatus `json:"status"`
}

// CustomerField names a mutable customer attribute for field-by-field updates.
type CustomerField string

const (
	CustomerFieldName       CustomerField = "name"
	CustomerFieldSurname    CustomerField = "surname"
	CustomerFieldNationalID CustomerField = "nationalId"
	CustomerFieldEmail      CustomerField = "email"
	CustomerFieldAddress    CustomerField = "address"
)

// ParseCustomerField maps a user-supplied field name to a CustomerField.
// Returns ErrValidation for anything outside the updatable set.
func ParseCustomerField(s string) (CustomerField, error) {
	switch CustomerField(s) {
	case CustomerFieldName, CustomerFieldSurname, CustomerFieldNationalID,
		CustomerFieldEmail, CustomerFieldAddress:
		return CustomerField(s), nil
	}
	return "", fmt.Errorf("%w: unknown customer field %q", ErrValidation, s)
}

// Input formats are fixed and must be preserved exactly:
// national ID 111.111.111, phone 111-1111111, email local@domain.tld.
var (
	nationalIDRe = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}$`)
	phoneRe      = regexp.MustCompile(`^\d{3}-\d{7}$`)
	emailRe      = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// ValidNationalID reports whether s matches the DDD.DDD.DDD format.
func ValidNationalID(s string) bool { return nationalIDRe.MatchString(s) }

// ValidPhone reports whether s matches the DDD-DDDDDDD format.
func ValidPhone(s string) bool { return phoneRe.MatchString(s) }

// ValidEmail reports whether s has the structural shape local@domain.tld.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }
