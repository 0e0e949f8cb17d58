package subscriptions

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Subscription status values. Stripe statuses are stored verbatim;
// PayPal lifecycle events map onto active/cancelled.
const (
	StatusActive    = "active"
	StatusTrialing  = "trialing"
	StatusPastDue   = "past_due"
	StatusUnpaid    = "unpaid"
	StatusCancelled = "cancelled"
)

// Subscription entity
type Subscription struct {
	ID                    string `validate:"required,uuid4"`
	Gateway               string `validate:"required,oneof=stripe paypal"`
	GatewaySubscriptionID string `validate:"required,min=1,max=255"`
	CustomerEmail         string `validate:"required,email"`
	SKU                   string `validate:"required,min=1,max=100"`
	Status                string `validate:"required,min=1,max=50"`

	CurrentPeriodStart time.Time
	CurrentPeriodEnd   *time.Time
	CancelAtPeriodEnd  bool
	CancelledAt        *time.Time

	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Subscription struct
func (s *Subscription) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
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
