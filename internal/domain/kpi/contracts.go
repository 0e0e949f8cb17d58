package kpi

import (
	"context"
	"time"
)

// KPIService manages the daily KPI rows.
type KPIService interface {
	// Upsert creates or replaces the row for the KPI's date.
	Upsert(ctx context.Context, daily *DailyKPI) (*DailyKPI, error)

	// ListRecent returns up to days rows, newest first.
	ListRecent(ctx context.Context, days int) ([]*DailyKPI, error)

	// Rollup recomputes lead/order/refund/gross figures for the given
	// day from the source tables and upserts the row.
	Rollup(ctx context.Context, day time.Time) (*DailyKPI, error)
}

// KPIRepository defines the interface for DailyKPI-related operations
type KPIRepository interface {
	// UpsertByDate creates or updates the row keyed by Date
	UpsertByDate(ctx context.Context, daily *DailyKPI) error
	// GetByDate retrieves the row for a day
	GetByDate(ctx context.Context, day time.Time) (*DailyKPI, error)
	// ListRecent returns up to limit rows, newest first
	ListRecent(ctx context.Context, limit int) ([]*DailyKPI, error)
}
