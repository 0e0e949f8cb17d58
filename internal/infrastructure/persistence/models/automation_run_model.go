package models

import (
	"encoding/json"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/automations"
)

// AutomationRunModel is the GORM database model for automation runs (infrastructure concern)
type AutomationRunModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	AutomationID string `gorm:"not null;index;type:varchar(100)"`
	Name         string `gorm:"not null;type:varchar(255)"`
	Status       string `gorm:"not null;index;type:varchar(20)"`

	// TriggerData and ExecutionData are JSON-encoded objects.
	TriggerData   string `gorm:"type:text"`
	ExecutionData string `gorm:"type:text"`
	ErrorMessage  string `gorm:"type:text"`

	StartedAt   time.Time `gorm:"not null;index"`
	CompletedAt *time.Time
	DurationMs  *int64
}

// TableName specifies the table name for GORM
func (AutomationRunModel) TableName() string {
	return "automation_runs"
}

// ToDomain converts GORM model to domain entity
func (m *AutomationRunModel) ToDomain() *automations.Run {
	run := &automations.Run{
		ID:           m.ID,
		AutomationID: m.AutomationID,
		Name:         m.Name,
		Status:       m.Status,
		ErrorMessage: m.ErrorMessage,
		StartedAt:    m.StartedAt,
		CompletedAt:  m.CompletedAt,
		DurationMs:   m.DurationMs,
	}
	if m.TriggerData != "" {
		_ = json.Unmarshal([]byte(m.TriggerData), &run.TriggerData)
	}
	if m.ExecutionData != "" {
		_ = json.Unmarshal([]byte(m.ExecutionData), &run.ExecutionData)
	}
	return run
}

// FromDomain converts domain entity to GORM model
func (m *AutomationRunModel) FromDomain(r *automations.Run) {
	m.ID = r.ID
	m.AutomationID = r.AutomationID
	m.Name = r.Name
	m.Status = r.Status
	m.ErrorMessage = r.ErrorMessage
	m.StartedAt = r.StartedAt
	m.CompletedAt = r.CompletedAt
	m.DurationMs = r.DurationMs
	m.TriggerData = encodeJSONMap(r.TriggerData)
	m.ExecutionData = encodeJSONMap(r.ExecutionData)
}

func encodeJSONMap(data map[string]any) string {
	if len(data) == 0 {
		return ""
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return string(encoded)
}
