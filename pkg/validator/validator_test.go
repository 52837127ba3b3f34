package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nestedRequest struct {
	Name string `json:"name" validate:"required"`
}

type sampleRequest struct {
	Email     string         `json:"email" validate:"required,email"`
	Password  string         `json:"password" validate:"required,min=6"`
	Name      string         `json:"name" validate:"notblank"`
	BirthDate string         `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	ProfileID string         `json:"profileId" validate:"required,uuid"`
	Quantity  int            `json:"quantity" validate:"gte=0"`
	Exam      *nestedRequest `json:"exam" validate:"omitempty"`
}

func TestValidate_FormatsJSONFieldNames(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:     "not-an-email",
		Password:  "123",
		Name:      "   ",
		BirthDate: "12/01/1990",
		ProfileID: "abc",
		Quantity:  -1,
		Exam:      &nestedRequest{},
	})
	require.Error(t, err)

	errs := cv.FormatValidationErrors(err)
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "password must be at least 6 characters", errs["password"])
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "birthDate must match the format 2006-01-02", errs["birthDate"])
	assert.Equal(t, "profileId must be a valid UUID", errs["profileId"])
	assert.Equal(t, "quantity must be greater than or equal to 0", errs["quantity"])
	assert.Equal(t, "exam.name is required", errs["exam.name"])
}

func TestValidate_Valid(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:     "ana@clinic.com",
		Password:  "secret1",
		Name:      "Ana",
		BirthDate: "1990-01-12",
		ProfileID: "3f2b8c1e-8a4d-4d2a-9a7e-2c5f6b7d8e9f",
	})
	assert.NoError(t, err)
}

type priceRequest struct {
	UnitPrice *decimal.Decimal `json:"unitPrice" validate:"omitempty,money"`
}

func TestValidate_Money(t *testing.T) {
	cv := NewValidator()

	for _, raw := range []string{"0", "12.5", "12.50", "9999999999.99"} {
		d := decimal.RequireFromString(raw)
		assert.NoError(t, cv.Validate(&priceRequest{UnitPrice: &d}), raw)
	}
	assert.NoError(t, cv.Validate(&priceRequest{}))

	for _, raw := range []string{"-0.01", "1.005", "10000000000"} {
		d := decimal.RequireFromString(raw)
		err := cv.Validate(&priceRequest{UnitPrice: &d})
		require.Error(t, err, raw)
		assert.Contains(t, cv.FormatValidationErrors(err)["unitPrice"], "non-negative amount", raw)
	}
}
