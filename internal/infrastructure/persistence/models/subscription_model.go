package models

import (
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/subscriptions"
)

// SubscriptionModel is the GORM database model for subscriptions (infrastructure concern)
type SubscriptionModel struct {
	ID                    string `gorm:"primaryKey;type:uuid"`
	Gateway               string `gorm:"not null;type:varchar(20);uniqueIndex:idx_subscriptions_gateway_sub"`
	GatewaySubscriptionID string `gorm:"not null;type:varchar(255);uniqueIndex:idx_subscriptions_gateway_sub"`
	CustomerEmail         string `gorm:"not null;index;type:varchar(255)"`
	SKU                   string `gorm:"not null;index;type:varchar(100)"`
	Status                string `gorm:"not null;index;type:varchar(50)"`

	CurrentPeriodStart time.Time
	CurrentPeriodEnd   *time.Time
	CancelAtPeriodEnd  bool `gorm:"not null;default:false"`
	CancelledAt        *time.Time

	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToDomain converts GORM model to domain entity
func (m *SubscriptionModel) ToDomain() *subscriptions.Subscription {
	return &subscriptions.Subscription{
		ID:                    m.ID,
		Gateway:               m.Gateway,
		GatewaySubscriptionID: m.GatewaySubscriptionID,
		CustomerEmail:         m.CustomerEmail,
		SKU:                   m.SKU,
		Status:                m.Status,
		CurrentPeriodStart:    m.CurrentPeriodStart,
		CurrentPeriodEnd:      m.CurrentPeriodEnd,
		CancelAtPeriodEnd:     m.CancelAtPeriodEnd,
		CancelledAt:           m.CancelledAt,
		DateTimeCreated:       m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SubscriptionModel) FromDomain(s *subscriptions.Subscription) {
	m.ID = s.ID
	m.Gateway = s.Gateway
	m.GatewaySubscriptionID = s.GatewaySubscriptionID
	m.CustomerEmail = s.CustomerEmail
	m.SKU = s.SKU
	m.Status = s.Status
	m.CurrentPeriodStart = s.CurrentPeriodStart
	m.CurrentPeriodEnd = s.CurrentPeriodEnd
	m.CancelAtPeriodEnd = s.CancelAtPeriodEnd
	m.CancelledAt = s.CancelledAt
	m.DateTimeCreated = s.DateTimeCreated
}
