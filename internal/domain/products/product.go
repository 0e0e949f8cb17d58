package products

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// SKU prefixes routed by the fulfillment service
const (
	SKUPrefixCopyKit  = "COPYKIT"
	SKUPrefixBriefing = "DAILYBRIEF"
)

// Product entity
type Product struct {
	ID              string `validate:"required,uuid4"`
	SKU             string `validate:"required,skuValidation"`
	Name            string `validate:"required,min=1,max=255"`
	PricePence      int64  `validate:"min=0"`
	Currency        string `validate:"required,len=3"`
	Active          bool
	// FulfillmentWebhook, when set, enables automatic fulfillment on
	// checkout events.
	FulfillmentWebhook string    `validate:"omitempty,url"`
	DateTimeCreated    time.Time `validate:"required"`
}

// Validate for validating Product struct
func (p *Product) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("skuValidation", validators.SKUValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(p)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// IsCopyKitSKU reports whether the SKU routes to CopyKit fulfillment.
func IsCopyKitSKU(sku string) bool {
	return strings.HasPrefix(sku, SKUPrefixCopyKit)
}

// IsBriefingSKU reports whether the SKU routes to Daily Briefing fulfillment.
func IsBriefingSKU(sku string) bool {
	return strings.HasPrefix(sku, SKUPrefixBriefing)
}
