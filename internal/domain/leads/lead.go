package leads

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Lead entity
type Lead struct {
	ID     string `validate:"required,uuid4"`
	Email  string `validate:"required,email"`
	Name   string `validate:"max=255"`
	Source string `validate:"required,min=1,max=100"`
	Tags   []string

	UTMSource   string
	UTMCampaign string
	UTMMedium   string
	UTMTerm     string
	UTMContent  string

	EnrichmentCompany  string
	EnrichmentRole     string
	EnrichmentLinkedIn string

	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Lead struct
func (l *Lead) Validate() error {
	validate := validator.New()

	err := validate.Struct(l)
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

// MergeTags unions the lead's tags with the given set, preserving order
// of first appearance.
func (l *Lead) MergeTags(tags []string) {
	seen := make(map[string]struct{}, len(l.Tags)+len(tags))
	merged := make([]string, 0, len(l.Tags)+len(tags))
	for _, t := range append(append([]string{}, l.Tags...), tags...) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}
	l.Tags = merged
}

// Enrichment holds third-party firmographic data for a lead.
type Enrichment struct {
	Company  string
	Role     string
	LinkedIn string
}

// IntakeResult summarizes one lead intake run.
type IntakeResult struct {
	LeadID        string
	Enrichment    Enrichment
	CRMPageID     string
	FollowUpIssue string
}

// LeadQuery is the filter for listing leads.
type LeadQuery struct {
	Source          string
	Tag             string
	DateTimeCreated time.Time

	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created email"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewLeadQuery creates a LeadQuery with default pagination.
func NewLeadQuery() *LeadQuery {
	return &LeadQuery{
		Limit:     100,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating LeadQuery struct
func (q *LeadQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
