package leads

import (
	"context"
	"time"
)

// LeadService defines lead creation with the duplicate guard on email.
type LeadService interface {
	// Upsert creates the lead or, when the email is already known,
	// merges tags and fills blank fields on the existing record.
	// It returns the stored Lead and any error encountered.
	Upsert(ctx context.Context, lead *Lead) (*Lead, error)
}

// LeadIntakeService runs the full intake pipeline: upsert, enrichment,
// mail list, CRM record and optional enterprise follow-up task.
type LeadIntakeService interface {
	Process(ctx context.Context, lead *Lead) (*IntakeResult, error)
}

// LeadRepository defines the interface for Lead-related operations
type LeadRepository interface {
	// Create adds a new Lead to the database
	Create(ctx context.Context, lead *Lead) error
	// List lists Leads in the database with optional filter
	List(ctx context.Context, query *LeadQuery) ([]*Lead, error)
	// GetByEmail retrieves a Lead by its unique email
	GetByEmail(ctx context.Context, email string) (*Lead, error)
	// UpdateByID updates a Lead in the database by ID
	UpdateByID(ctx context.Context, lead *Lead) error
	// CountBetween counts leads created in [start, end)
	CountBetween(ctx context.Context, start, end time.Time) (int64, error)
}

// EnrichmentConnector looks up firmographic data for an email address.
// A connector without credentials returns an empty Enrichment, not an
// error, so intake keeps going.
type EnrichmentConnector interface {
	Enrich(ctx context.Context, email string) (*Enrichment, error)
}

// MailListConnector subscribes a lead to the warm email list.
type MailListConnector interface {
	AddContact(ctx context.Context, email, name string, tags []string) error
}

// CRMConnector creates a contact record in the CRM backend (Notion).
type CRMConnector interface {
	// CreateContact returns the ID of the created CRM page.
	CreateContact(ctx context.Context, lead *Lead, enrichment *Enrichment) (string, error)
}

// TaskConnector files a follow-up task in the issue tracker (Linear).
type TaskConnector interface {
	// CreateFollowUp returns the ID of the created issue.
	CreateFollowUp(ctx context.Context, lead *Lead, enrichment *Enrichment) (string, error)
}
