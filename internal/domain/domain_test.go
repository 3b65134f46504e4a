package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyroute/skyroute/internal/domain"
)

func TestValidNationalID(t *testing.T) {
	valid := []string{"123.456.789", "000.000.000"}
	invalid := []string{"123456789", "123.456.78", "123.456.7890", "12.456.789", "123,456,789", "abc.def.ghi", "", " 123.456.789"}

	for _, s := range valid {
		assert.True(t, domain.ValidNationalID(s), "%q should be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, domain.ValidNationalID(s), "%q should be invalid", s)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"261-5678545", "011-1234567"}
	invalid := []string{"2615678545", "26-15678545", "261-567854", "261-56785456", "261 5678545", ""}

	for _, s := range valid {
		assert.True(t, domain.ValidPhone(s), "%q should be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, domain.ValidPhone(s), "%q should be invalid", s)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"ana@example.com", "a.b+c@sub.example.org"}
	invalid := []string{"ana", "ana@", "@example.com", "ana@example", "ana diaz@example.com", ""}

	for _, s := range valid {
		assert.True(t, domain.ValidEmail(s), "%q should be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, domain.ValidEmail(s), "%q should be invalid", s)
	}
}

func TestParseCustomerField(t *testing.T) {
	for _, s := range []string{"name", "surname", "nationalId", "email", "address"} {
		got, err := domain.ParseCustomerField(s)
		assert.NoError(t, err, s)
		assert.Equal(t, domain.CustomerField(s), got)
	}

	_, err := domain.ParseCustomerField("status")
	assert.ErrorIs(t, err, domain.ErrValidation, "status is not directly updatable")
}

func TestParseDestinationField(t *testing.T) {
	for _, s := range []string{"city", "province", "country", "baseCost"} {
		_, err := domain.ParseDestinationField(s)
		assert.NoError(t, err, s)
	}

	_, err := domain.ParseDestinationField("airport")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseSaleStatus(t *testing.T) {
	for _, s := range []string{"Active", "Cancelled"} {
		_, err := domain.ParseSaleStatus(s)
		assert.NoError(t, err, s)
	}

	for _, s := range []string{"active", "Pending", ""} {
		_, err := domain.ParseSaleStatus(s)
		assert.ErrorIs(t, err, domain.ErrValidation, s)
	}
}
