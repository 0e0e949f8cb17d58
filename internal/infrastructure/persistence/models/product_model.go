package models

import (
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/products"
)

// ProductModel is the GORM database model for products (infrastructure concern)
type ProductModel struct {
	ID                 string    `gorm:"primaryKey;type:uuid"`
	SKU                string    `gorm:"not null;uniqueIndex;type:varchar(100)"`
	Name               string    `gorm:"not null;type:varchar(255)"`
	PricePence         int64     `gorm:"not null"`
	Currency           string    `gorm:"not null;type:varchar(3)"`
	Active             bool      `gorm:"not null;default:true"`
	FulfillmentWebhook string    `gorm:"type:varchar(512)"`
	DateTimeCreated    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts GORM model to domain entity
func (m *ProductModel) ToDomain() *products.Product {
	return &products.Product{
		ID:                 m.ID,
		SKU:                m.SKU,
		Name:               m.Name,
		PricePence:         m.PricePence,
		Currency:           m.Currency,
		Active:             m.Active,
		FulfillmentWebhook: m.FulfillmentWebhook,
		DateTimeCreated:    m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProductModel) FromDomain(p *products.Product) {
	m.ID = p.ID
	m.SKU = p.SKU
	m.Name = p.Name
	m.PricePence = p.PricePence
	m.Currency = p.Currency
	m.Active = p.Active
	m.FulfillmentWebhook = p.FulfillmentWebhook
	m.DateTimeCreated = p.DateTimeCreated
}
