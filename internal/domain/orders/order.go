package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Order status values
const (
	StatusPaid     = "paid"
	StatusRefunded = "refunded"
	StatusDisputed = "disputed"
)

// ErrOrderNotFound is returned when an order lookup by ID matches
// nothing. Handlers map it to 404.
var ErrOrderNotFound = errors.New("order not found")

// Order entity
type Order struct {
	ID                   string `validate:"required,uuid4"`
	Gateway              string `validate:"required,oneof=stripe paypal"`
	GatewayTransactionID string `validate:"required,min=1,max=255"`
	Status               string `validate:"required,oneof=paid refunded disputed"`
	AmountPence          int64  `validate:"min=0"`
	BuyerEmail           string `validate:"required,email"`
	BuyerName            string `validate:"max=255"`
	SKU                  string `validate:"required,skuValidation"`
	Metadata             json.RawMessage
	Fulfilled            bool
	FulfilledAt          *time.Time
	DateTimeCreated      time.Time `validate:"required"`
}

// Validate for validating Order struct
func (o *Order) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("skuValidation", validators.SKUValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(o)
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

// OrderQuery is the filter for listing orders.
type OrderQuery struct {
	Gateway         string `validate:"omitempty,oneof=stripe paypal"`
	Status          string `validate:"omitempty,oneof=paid refunded disputed"`
	SKU             string
	DateTimeCreated time.Time

	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created amount_pence"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewOrderQuery creates an OrderQuery with default pagination.
func NewOrderQuery() *OrderQuery {
	return &OrderQuery{
		Limit:     100,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating OrderQuery struct
func (q *OrderQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
