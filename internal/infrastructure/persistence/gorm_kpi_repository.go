package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence/models"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormKPIRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKPIRepository creates a new GORM-based KPIRepository implementation
func NewGormKPIRepository(db *gorm.DB, logger logger.Logger) (kpi.KPIRepository, error) {
	return &gormKPIRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKPIRepository) UpsertByDate(ctx context.Context, daily *kpi.DailyKPI) error {
	if err := daily.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DailyKPIModel{}
	model.FromDomain(daily)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert daily kpi: %w", err)
	}

	r.logger.Info("Upserted daily kpi for ", model.Date.Format("2006-01-02"))
	return nil
}

// GetByDate returns (nil, nil) when no row exists for the day.
func (r *gormKPIRepository) GetByDate(ctx context.Context, day time.Time) (*kpi.DailyKPI, error) {
	var model models.DailyKPIModel
	if err := r.db.WithContext(ctx).Where("date = ?", kpi.Day(day)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch daily kpi: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKPIRepository) ListRecent(ctx context.Context, limit int) ([]*kpi.DailyKPI, error) {
	var modelList []*models.DailyKPIModel
	dbQuery := r.db.WithContext(ctx).Model(&models.DailyKPIModel{}).Order("date desc")
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch daily kpis: %w", err)
	}

	domainList := make([]*kpi.DailyKPI, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
