package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence/models"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormContentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormContentRepository creates a new GORM-based ContentRepository implementation
func NewGormContentRepository(db *gorm.DB, logger logger.Logger) (content.ContentRepository, error) {
	return &gormContentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormContentRepository) Create(ctx context.Context, asset *content.ContentAsset) error {
	if err := asset.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ContentAssetModel{}
	model.FromDomain(asset)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create content asset: %w", err)
	}

	r.logger.Info("Created content asset with id ", asset.ID)
	return nil
}

func (r *gormContentRepository) GetByID(ctx context.Context, assetID string) (*content.ContentAsset, error) {
	var model models.ContentAssetModel
	if err := r.db.WithContext(ctx).Where("id = ?", assetID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("content asset with ID %s not found", assetID)
		}
		return nil, fmt.Errorf("failed to fetch content asset: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormContentRepository) ListRecent(ctx context.Context, limit int) ([]*content.ContentAsset, error) {
	var modelList []*models.ContentAssetModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ContentAssetModel{}).Order("date_time_created desc")
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch content assets: %w", err)
	}

	domainList := make([]*content.ContentAsset, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
