package automations

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Automation identifiers, kept aligned with the runbook naming.
const (
	AutomationLeadIntake       = "A1-lead-intake"
	AutomationCheckoutWebhooks = "A2-checkout-webhooks"
	AutomationDailyBriefing    = "A3-briefing-daily"
	AutomationFulfillment      = "A4-copykit-fulfilment"
)

// Run status values
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusPartial   = "partial"
)

// Run records one automation execution for the operations log.
type Run struct {
	ID           string `validate:"required,uuid4"`
	AutomationID string `validate:"required,min=1,max=100"`
	Name         string `validate:"required,min=1,max=255"`
	Status       string `validate:"required,oneof=completed failed partial"`

	TriggerData   map[string]any
	ExecutionData map[string]any
	ErrorMessage  string

	StartedAt   time.Time `validate:"required"`
	CompletedAt *time.Time
	DurationMs  *int64
}

// Validate for validating Run struct
func (r *Run) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// Finish stamps the completion time and duration for a terminal status.
func (r *Run) Finish(status string, errMessage string) {
	now := time.Now().UTC()
	r.Status = status
	r.ErrorMessage = errMessage
	r.CompletedAt = &now
	durationMs := now.Sub(r.StartedAt).Milliseconds()
	r.DurationMs = &durationMs
}
