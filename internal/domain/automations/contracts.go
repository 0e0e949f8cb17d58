package automations

import "context"

// RunRepository defines the interface for automation Run records
type RunRepository interface {
	// Create adds a new Run to the database
	Create(ctx context.Context, run *Run) error
	// ListByAutomation returns up to limit runs of one automation, newest first
	ListByAutomation(ctx context.Context, automationID string, limit int) ([]*Run, error)
}
