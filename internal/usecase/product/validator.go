package product

import (
	"unicode/utf8"

	appErrors "product-inventory-api/pkg/errors"
)

const maxDescriptionLength = 500

// validateProductData reports the first violated rule. The same rules apply
// on create and update. The description limit counts characters, not bytes,
// so multibyte text up to 500 runes is accepted.
func validateProductData(description string, price float64, stock int) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return appErrors.NewAppError("VALIDATION_ERROR", "description must not exceed 500 characters", nil)
	}

	if price <= 0 {
		return appErrors.NewAppError("VALIDATION_ERROR", "price must be greater than 0", nil)
	}

	if stock < 0 {
		return appErrors.NewAppError("VALIDATION_ERROR", "stock must not be negative", nil)
	}

	return nil
}
