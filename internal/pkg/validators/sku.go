package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// SKUs are uppercase alphanumeric segments joined by hyphens, e.g.
// COPYKIT-PRO or DAILYBRIEF-MONTHLY.
var skuPattern = regexp.MustCompile(`^[A-Z0-9]+(-[A-Z0-9]+)*$`)

// SKUValidation validates the product SKU format.
func SKUValidation(fl validator.FieldLevel) bool {
	sku := fl.Field().String()
	if len(sku) == 0 || len(sku) > 100 {
		return false
	}
	return skuPattern.MatchString(sku)
}
