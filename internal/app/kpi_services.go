package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

// kpiService implements the KPIService interface over the daily KPI rows
type kpiService struct {
	kpiRepo   kpi.KPIRepository
	leadRepo  leads.LeadRepository
	orderRepo orders.OrderRepository
	logger    logger.Logger
}

// NewKPIService creates a new kpiService instance
func NewKPIService(
	kpiRepo kpi.KPIRepository,
	leadRepo leads.LeadRepository,
	orderRepo orders.OrderRepository,
	logger logger.Logger,
) (kpi.KPIService, error) {
	return &kpiService{
		kpiRepo:   kpiRepo,
		leadRepo:  leadRepo,
		orderRepo: orderRepo,
		logger:    logger,
	}, nil
}

func (s *kpiService) Upsert(ctx context.Context, daily *kpi.DailyKPI) (*kpi.DailyKPI, error) {
	daily.Date = kpi.Day(daily.Date)

	if err := s.kpiRepo.UpsertByDate(ctx, daily); err != nil {
		return nil, err
	}
	return s.kpiRepo.GetByDate(ctx, daily.Date)
}

func (s *kpiService) ListRecent(ctx context.Context, days int) ([]*kpi.DailyKPI, error) {
	if days <= 0 {
		days = 30
	}
	return s.kpiRepo.ListRecent(ctx, days)
}

// Rollup recomputes the day's figures from the lead and order tables.
// Visitor counts come from the analytics import and are preserved from
// any existing row.
func (s *kpiService) Rollup(ctx context.Context, day time.Time) (*kpi.DailyKPI, error) {
	dayStart := kpi.Day(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	leadsCount, err := s.leadRepo.CountBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	ordersCount, refunds, grossPence, err := s.orderRepo.CountBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	daily := &kpi.DailyKPI{
		Date:       dayStart,
		Leads:      leadsCount,
		Orders:     ordersCount,
		GrossPence: grossPence,
		NetPence:   grossPence,
		Refunds:    refunds,
	}

	if existing, err := s.kpiRepo.GetByDate(ctx, dayStart); err == nil && existing != nil {
		daily.Visitors = existing.Visitors
	}

	if leadsCount > 0 {
		pct := float64(ordersCount) / float64(leadsCount) * 100
		daily.ConversionPct = math.Round(pct*100) / 100
	}

	if err := s.kpiRepo.UpsertByDate(ctx, daily); err != nil {
		return nil, err
	}

	s.logger.Info("KPI rollup for ", dayStart.Format("2006-01-02"), ": ",
		leadsCount, " leads, ", ordersCount, " orders, ", grossPence, " gross pence")
	return daily, nil
}
