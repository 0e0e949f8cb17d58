package models

import (
	"encoding/json"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
)

// OrderModel is the GORM database model for orders (infrastructure concern)
type OrderModel struct {
	ID                   string `gorm:"primaryKey;type:uuid"`
	Gateway              string `gorm:"not null;type:varchar(20);uniqueIndex:idx_orders_gateway_txn"`
	GatewayTransactionID string `gorm:"not null;type:varchar(255);uniqueIndex:idx_orders_gateway_txn"`
	Status               string `gorm:"not null;index;type:varchar(20)"`
	AmountPence          int64  `gorm:"not null"`
	BuyerEmail           string `gorm:"not null;index;type:varchar(255)"`
	BuyerName            string `gorm:"type:varchar(255)"`
	SKU                  string `gorm:"not null;index;type:varchar(100)"`
	Metadata             string `gorm:"type:text"`
	Fulfilled            bool   `gorm:"not null;default:false"`
	FulfilledAt          *time.Time
	DateTimeCreated      time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts GORM model to domain entity
func (m *OrderModel) ToDomain() *orders.Order {
	var metadata json.RawMessage
	if m.Metadata != "" {
		metadata = json.RawMessage(m.Metadata)
	}
	return &orders.Order{
		ID:                   m.ID,
		Gateway:              m.Gateway,
		GatewayTransactionID: m.GatewayTransactionID,
		Status:               m.Status,
		AmountPence:          m.AmountPence,
		BuyerEmail:           m.BuyerEmail,
		BuyerName:            m.BuyerName,
		SKU:                  m.SKU,
		Metadata:             metadata,
		Fulfilled:            m.Fulfilled,
		FulfilledAt:          m.FulfilledAt,
		DateTimeCreated:      m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrderModel) FromDomain(o *orders.Order) {
	m.ID = o.ID
	m.Gateway = o.Gateway
	m.GatewayTransactionID = o.GatewayTransactionID
	m.Status = o.Status
	m.AmountPence = o.AmountPence
	m.BuyerEmail = o.BuyerEmail
	m.BuyerName = o.BuyerName
	m.SKU = o.SKU
	m.Metadata = string(o.Metadata)
	m.Fulfilled = o.Fulfilled
	m.FulfilledAt = o.FulfilledAt
	m.DateTimeCreated = o.DateTimeCreated
}
