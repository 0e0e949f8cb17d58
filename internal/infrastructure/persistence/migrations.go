package persistence

import (
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence/models"
)

// AllModels lists every persistence model for schema migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.OrderModel{},
		&models.LeadModel{},
		&models.ProductModel{},
		&models.SubscriptionModel{},
		&models.DailyKPIModel{},
		&models.ContentAssetModel{},
		&models.AutomationRunModel{},
	}
}
