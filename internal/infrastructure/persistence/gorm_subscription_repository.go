package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/subscriptions"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence/models"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSubscriptionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSubscriptionRepository creates a new GORM-based SubscriptionRepository implementation
func NewGormSubscriptionRepository(db *gorm.DB, logger logger.Logger) (subscriptions.SubscriptionRepository, error) {
	return &gormSubscriptionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSubscriptionRepository) Create(ctx context.Context, subscription *subscriptions.Subscription) error {
	if err := subscription.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SubscriptionModel{}
	model.FromDomain(subscription)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	r.logger.Info("Created subscription with id ", subscription.ID)
	return nil
}

// GetByGatewayID returns (nil, nil) for unknown gateway subscription
// IDs. Update and cancel events can arrive before the create event.
func (r *gormSubscriptionRepository) GetByGatewayID(ctx context.Context, gatewaySubscriptionID string) (*subscriptions.Subscription, error) {
	var model models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("gateway_subscription_id = ?", gatewaySubscriptionID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch subscription by gateway id: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSubscriptionRepository) UpdateByID(ctx context.Context, subscription *subscriptions.Subscription) error {
	if err := subscription.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SubscriptionModel{}
	model.FromDomain(subscription)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	r.logger.Info("Updated subscription with id ", subscription.ID)
	return nil
}

func (r *gormSubscriptionRepository) ListActiveBySKU(ctx context.Context, sku string) ([]*subscriptions.Subscription, error) {
	var modelList []*models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("sku = ? AND status IN ?", sku, []string{subscriptions.StatusActive, subscriptions.StatusTrialing}).
		Order("date_time_created asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscriptions by sku: %w", err)
	}

	domainList := make([]*subscriptions.Subscription, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
