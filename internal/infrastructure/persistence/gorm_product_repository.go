package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/products"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence/models"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProductRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProductRepository creates a new GORM-based ProductRepository implementation
func NewGormProductRepository(db *gorm.DB, logger logger.Logger) (products.ProductRepository, error) {
	return &gormProductRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProductRepository) Create(ctx context.Context, product *products.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Info("Created product with sku ", product.SKU)
	return nil
}

// GetBySKU returns (nil, nil) for unknown SKUs. Checkout events can
// reference SKUs before the catalog row exists.
func (r *gormProductRepository) GetBySKU(ctx context.Context, sku string) (*products.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product by sku: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProductRepository) List(ctx context.Context) ([]*products.Product, error) {
	var modelList []*models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("sku asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	domainList := make([]*products.Product, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormProductRepository) UpdateByID(ctx context.Context, product *products.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	r.logger.Info("Updated product with sku ", product.SKU)
	return nil
}
