package models

import (
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
)

// DailyKPIModel is the GORM database model for daily KPI rows (infrastructure concern)
type DailyKPIModel struct {
	Date          time.Time `gorm:"primaryKey"`
	Visitors      int64     `gorm:"not null;default:0"`
	Leads         int64     `gorm:"not null;default:0"`
	Orders        int64     `gorm:"not null;default:0"`
	GrossPence    int64     `gorm:"not null;default:0"`
	NetPence      int64     `gorm:"not null;default:0"`
	Refunds       int64     `gorm:"not null;default:0"`
	ConversionPct float64   `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (DailyKPIModel) TableName() string {
	return "daily_kpis"
}

// ToDomain converts GORM model to domain entity
func (m *DailyKPIModel) ToDomain() *kpi.DailyKPI {
	return &kpi.DailyKPI{
		Date:          m.Date,
		Visitors:      m.Visitors,
		Leads:         m.Leads,
		Orders:        m.Orders,
		GrossPence:    m.GrossPence,
		NetPence:      m.NetPence,
		Refunds:       m.Refunds,
		ConversionPct: m.ConversionPct,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DailyKPIModel) FromDomain(k *kpi.DailyKPI) {
	m.Date = kpi.Day(k.Date)
	m.Visitors = k.Visitors
	m.Leads = k.Leads
	m.Orders = k.Orders
	m.GrossPence = k.GrossPence
	m.NetPence = k.NetPence
	m.Refunds = k.Refunds
	m.ConversionPct = k.ConversionPct
}
