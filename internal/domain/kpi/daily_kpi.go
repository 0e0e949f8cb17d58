package kpi

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DailyKPI is the per-day business metrics row. Date is unique and
// normalized to midnight UTC.
type DailyKPI struct {
	Date          time.Time `validate:"required"`
	Visitors      int64     `validate:"min=0"`
	Leads         int64     `validate:"min=0"`
	Orders        int64     `validate:"min=0"`
	GrossPence    int64     `validate:"min=0"`
	NetPence      int64     `validate:"min=0"`
	Refunds       int64     `validate:"min=0"`
	ConversionPct float64   `validate:"min=0,max=100"`
}

// Validate for validating DailyKPI struct
func (k *DailyKPI) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
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

// Day truncates a timestamp to its KPI bucket (midnight UTC).
func Day(t time.Time) time.Time {
	return time.Date(t.UTC().Year(), t.UTC().Month(), t.UTC().Day(), 0, 0, 0, 0, time.UTC)
}
