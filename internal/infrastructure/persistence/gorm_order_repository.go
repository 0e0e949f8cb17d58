package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence/models"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOrderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderRepository creates a new GORM-based OrderRepository implementation
func NewGormOrderRepository(db *gorm.DB, logger logger.Logger) (orders.OrderRepository, error) {
	return &gormOrderRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOrderRepository) Create(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrderModel{}
	model.FromDomain(order)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Info("Created order with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.OrderModel
	dbQuery := r.db.WithContext(ctx).Model(&models.OrderModel{})

	if query.Gateway != "" {
		dbQuery = dbQuery.Where("gateway = ?", query.Gateway)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.SKU != "" {
		dbQuery = dbQuery.Where("sku = ?", query.SKU)
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
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	domainList := make([]*orders.Order, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, orderID string) (*orders.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", orders.ErrOrderNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return model.ToDomain(), nil
}

// GetByTransactionID returns (nil, nil) when no order matches, so
// callers can treat unknown gateway transactions as a no-op.
func (r *gormOrderRepository) GetByTransactionID(ctx context.Context, gateway, transactionID string) (*orders.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Where("gateway = ? AND gateway_transaction_id = ?", gateway, transactionID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order by transaction id: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormOrderRepository) UpdateByID(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrderModel{}
	model.FromDomain(order)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	r.logger.Info("Updated order with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, int64, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("date_time_created >= ? AND date_time_created < ?", start, end).
		Count(&total).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var refunded int64
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("date_time_created >= ? AND date_time_created < ? AND status = ?", start, end, orders.StatusRefunded).
		Count(&refunded).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count refunded orders: %w", err)
	}

	var gross struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Select("COALESCE(SUM(amount_pence), 0) AS total").
		Where("date_time_created >= ? AND date_time_created < ? AND status = ?", start, end, orders.StatusPaid).
		Scan(&gross).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to sum order amounts: %w", err)
	}

	return total, refunded, gross.Total, nil
}
