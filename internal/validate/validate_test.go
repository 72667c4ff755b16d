package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/validate"
)

func TestPhoneInputValid(t *testing.T) {
	errs, f := validate.PhoneInput(map[string]string{
		"brand": "  Apple ", "model": "iPhone 12", "storage": "128GB", "color": "Black",
		"condition": "Good", "base_price": "400", "stock": "5", "tags": " refurbished ",
	})
	assert.Empty(t, errs)
	assert.Equal(t, "Apple", f.Brand)
	assert.Equal(t, "iPhone 12", f.Model)
	assert.Equal(t, 400.0, f.BasePrice)
	assert.Equal(t, 5, f.Stock)
	assert.Equal(t, "refurbished", f.Tags)
}

func TestPhoneInputMissingBrandAndBadCondition(t *testing.T) {
	errs, _ := validate.PhoneInput(map[string]string{
		"brand": "", "model": "X", "condition": "Bad",
	})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "Brand is required.")
	assert.Contains(t, errs, "Condition must be one of: New, Good, Usable, Scrap")
}

func TestPhoneInputNumericCoercion(t *testing.T) {
	// Decimal-looking stock truncates.
	errs, f := validate.PhoneInput(map[string]string{
		"brand": "A", "model": "B", "condition": "New", "base_price": "10.5", "stock": "3.0",
	})
	assert.Empty(t, errs)
	assert.Equal(t, 10.5, f.BasePrice)
	assert.Equal(t, 3, f.Stock)

	// Non-numeric input errors and coerces to zero; validation keeps going.
	errs, f = validate.PhoneInput(map[string]string{
		"brand": "A", "model": "B", "condition": "New", "base_price": "cheap", "stock": "many",
	})
	assert.Contains(t, errs, "Base price must be a number.")
	assert.Contains(t, errs, "Stock must be an integer.")
	assert.Equal(t, 0.0, f.BasePrice)
	assert.Equal(t, 0, f.Stock)
}

func TestPhoneInputBlankNumericFields(t *testing.T) {
	// A blank form field or empty CSV cell is not a number; it must be
	// rejected, not defaulted to zero.
	errs, f := validate.PhoneInput(map[string]string{
		"brand": "A", "model": "B", "condition": "New", "base_price": "", "stock": " ",
	})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "Base price must be a number.")
	assert.Contains(t, errs, "Stock must be an integer.")
	assert.Equal(t, 0.0, f.BasePrice)
	assert.Equal(t, 0, f.Stock)

	// Absent fields default to zero without an error.
	errs, f = validate.PhoneInput(map[string]string{
		"brand": "A", "model": "B", "condition": "New",
	})
	assert.Empty(t, errs)
	assert.Equal(t, 0.0, f.BasePrice)
	assert.Equal(t, 0, f.Stock)
}

func TestPhoneInputNegativeValues(t *testing.T) {
	errs, _ := validate.PhoneInput(map[string]string{
		"brand": "A", "model": "B", "condition": "New", "base_price": "-1", "stock": "-2",
	})
	assert.Contains(t, errs, "Base price cannot be negative.")
	assert.Contains(t, errs, "Stock cannot be negative.")
}
