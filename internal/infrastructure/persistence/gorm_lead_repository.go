package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence/models"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormLeadRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLeadRepository creates a new GORM-based LeadRepository implementation
func NewGormLeadRepository(db *gorm.DB, logger logger.Logger) (leads.LeadRepository, error) {
	return &gormLeadRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormLeadRepository) Create(ctx context.Context, lead *leads.Lead) error {
	if err := lead.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LeadModel{}
	model.FromDomain(lead)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	r.logger.Info("Created lead with id ", lead.ID)
	return nil
}

func (r *gormLeadRepository) List(ctx context.Context, query *leads.LeadQuery) ([]*leads.Lead, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.LeadModel
	dbQuery := r.db.WithContext(ctx).Model(&models.LeadModel{})

	if query.Source != "" {
		dbQuery = dbQuery.Where("source = ?", query.Source)
	}
	if query.Tag != "" {
		// Tags is stored as a JSON array string.
		dbQuery = dbQuery.Where("tags LIKE ?", "%\""+query.Tag+"\"%")
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch leads: %w", err)
	}

	domainList := make([]*leads.Lead, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

// GetByEmail returns (nil, nil) when the email is unknown, so callers
// can branch between create and merge without sentinel errors.
func (r *gormLeadRepository) GetByEmail(ctx context.Context, email string) (*leads.Lead, error) {
	var model models.LeadModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lead by email: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormLeadRepository) UpdateByID(ctx context.Context, lead *leads.Lead) error {
	if err := lead.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LeadModel{}
	model.FromDomain(lead)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	r.logger.Info("Updated lead with id ", lead.ID)
	return nil
}

func (r *gormLeadRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LeadModel{}).
		Where("date_time_created >= ? AND date_time_created < ?", start, end).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}
