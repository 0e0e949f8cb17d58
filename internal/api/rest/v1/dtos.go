package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error body for all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ReceivedResponse acknowledges a webhook delivery.
type ReceivedResponse struct {
	Received bool `json:"received"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Service   string    `json:"service"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// LeadRequest is the body for POST /api/leads.
type LeadRequest struct {
	Email  string   `json:"email" validate:"required,email"`
	Name   string   `json:"name" validate:"max=255"`
	Source string   `json:"source" validate:"required,min=1,max=100"`
	Tags   []string `json:"tags"`

	UTMSource   string `json:"utm_source"`
	UTMCampaign string `json:"utm_campaign"`
	UTMMedium   string `json:"utm_medium"`
	UTMTerm     string `json:"utm_term"`
	UTMContent  string `json:"utm_content"`
}

// Validate checks the LeadRequest fields
func (r *LeadRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// LeadResponse is returned after lead intake.
type LeadResponse struct {
	LeadID        string `json:"lead_id"`
	CRMPageID     string `json:"crm_page_id,omitempty"`
	FollowUpIssue string `json:"follow_up_issue,omitempty"`
}

// FulfilmentRequest is the body for the manual fulfilment endpoints.
type FulfilmentRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

// Validate checks the FulfilmentRequest fields
func (r *FulfilmentRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// FulfilmentResponse reports a completed manual fulfilment.
type FulfilmentResponse struct {
	OrderID   string `json:"order_id"`
	Fulfilled bool   `json:"fulfilled"`
}

// KPIUpdateRequest is the body for POST /api/kpi/update.
type KPIUpdateRequest struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Visitors      int64   `json:"visitors" validate:"min=0"`
	Leads         int64   `json:"leads" validate:"min=0"`
	Orders        int64   `json:"orders" validate:"min=0"`
	GrossPence    int64   `json:"gross_pence" validate:"min=0"`
	NetPence      int64   `json:"net_pence" validate:"min=0"`
	Refunds       int64   `json:"refunds" validate:"min=0"`
	ConversionPct float64 `json:"conversion_pct" validate:"min=0,max=100"`
}

// Validate checks the KPIUpdateRequest fields
func (r *KPIUpdateRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// KPIResponse is one daily KPI row.
type KPIResponse struct {
	Date          string  `json:"date"`
	Visitors      int64   `json:"visitors"`
	Leads         int64   `json:"leads"`
	Orders        int64   `json:"orders"`
	GrossPence    int64   `json:"gross_pence"`
	NetPence      int64   `json:"net_pence"`
	Refunds       int64   `json:"refunds"`
	ConversionPct float64 `json:"conversion_pct"`
}

// CopyKitDataResponse is the parsed landing-page snapshot.
type CopyKitDataResponse struct {
	GlobalEnv       map[string]string `json:"global_env"`
	Title           string            `json:"title"`
	MetaDescription string            `json:"meta_description"`
	ContentLength   int               `json:"content_length"`
	LastUpdated     time.Time         `json:"last_updated"`
}
