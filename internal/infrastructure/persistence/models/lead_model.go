package models

import (
	"encoding/json"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
)

// LeadModel is the GORM database model for leads (infrastructure concern)
type LeadModel struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	Email  string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Name   string `gorm:"type:varchar(255)"`
	Source string `gorm:"not null;index;type:varchar(100)"`
	// Tags is a JSON-encoded string array.
	Tags string `gorm:"type:text"`

	UTMSource   string `gorm:"type:varchar(255)"`
	UTMCampaign string `gorm:"type:varchar(255)"`
	UTMMedium   string `gorm:"type:varchar(255)"`
	UTMTerm     string `gorm:"type:varchar(255)"`
	UTMContent  string `gorm:"type:varchar(255)"`

	EnrichmentCompany  string `gorm:"type:varchar(255)"`
	EnrichmentRole     string `gorm:"type:varchar(255)"`
	EnrichmentLinkedIn string `gorm:"type:varchar(255)"`

	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (LeadModel) TableName() string {
	return "leads"
}

// ToDomain converts GORM model to domain entity
func (m *LeadModel) ToDomain() *leads.Lead {
	var tags []string
	if m.Tags != "" {
		_ = json.Unmarshal([]byte(m.Tags), &tags)
	}
	return &leads.Lead{
		ID:                 m.ID,
		Email:              m.Email,
		Name:               m.Name,
		Source:             m.Source,
		Tags:               tags,
		UTMSource:          m.UTMSource,
		UTMCampaign:        m.UTMCampaign,
		UTMMedium:          m.UTMMedium,
		UTMTerm:            m.UTMTerm,
		UTMContent:         m.UTMContent,
		EnrichmentCompany:  m.EnrichmentCompany,
		EnrichmentRole:     m.EnrichmentRole,
		EnrichmentLinkedIn: m.EnrichmentLinkedIn,
		DateTimeCreated:    m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LeadModel) FromDomain(l *leads.Lead) {
	m.ID = l.ID
	m.Email = l.Email
	m.Name = l.Name
	m.Source = l.Source
	if len(l.Tags) > 0 {
		encoded, _ := json.Marshal(l.Tags)
		m.Tags = string(encoded)
	} else {
		m.Tags = ""
	}
	m.UTMSource = l.UTMSource
	m.UTMCampaign = l.UTMCampaign
	m.UTMMedium = l.UTMMedium
	m.UTMTerm = l.UTMTerm
	m.UTMContent = l.UTMContent
	m.EnrichmentCompany = l.EnrichmentCompany
	m.EnrichmentRole = l.EnrichmentRole
	m.EnrichmentLinkedIn = l.EnrichmentLinkedIn
	m.DateTimeCreated = l.DateTimeCreated
}
