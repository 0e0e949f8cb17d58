package persistence

import (
	"context"
	"fmt"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/automations"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence/models"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAutomationRunRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAutomationRunRepository creates a new GORM-based RunRepository implementation
func NewGormAutomationRunRepository(db *gorm.DB, logger logger.Logger) (automations.RunRepository, error) {
	return &gormAutomationRunRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAutomationRunRepository) Create(ctx context.Context, run *automations.Run) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AutomationRunModel{}
	model.FromDomain(run)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create automation run: %w", err)
	}

	r.logger.Info("Recorded automation run ", run.AutomationID, " with status ", run.Status)
	return nil
}

func (r *gormAutomationRunRepository) ListByAutomation(ctx context.Context, automationID string, limit int) ([]*automations.Run, error) {
	var modelList []*models.AutomationRunModel
	dbQuery := r.db.WithContext(ctx).Model(&models.AutomationRunModel{}).
		Where("automation_id = ?", automationID).
		Order("started_at desc")
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch automation runs: %w", err)
	}

	domainList := make([]*automations.Run, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
