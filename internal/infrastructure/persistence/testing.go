//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/automations"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/products"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/subscriptions"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	OrderRepo        orders.OrderRepository
	LeadRepo         leads.LeadRepository
	ProductRepo      products.ProductRepository
	SubscriptionRepo subscriptions.SubscriptionRepository
	KPIRepo          kpi.KPIRepository
	ContentRepo      content.ContentRepository
	RunRepo          automations.RunRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(AllModels()...)
	require.NoError(t, err, "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	orderRepo, err := NewGormOrderRepository(db, log)
	require.NoError(t, err, "Failed to create order repository")

	leadRepo, err := NewGormLeadRepository(db, log)
	require.NoError(t, err, "Failed to create lead repository")

	productRepo, err := NewGormProductRepository(db, log)
	require.NoError(t, err, "Failed to create product repository")

	subscriptionRepo, err := NewGormSubscriptionRepository(db, log)
	require.NoError(t, err, "Failed to create subscription repository")

	kpiRepo, err := NewGormKPIRepository(db, log)
	require.NoError(t, err, "Failed to create kpi repository")

	contentRepo, err := NewGormContentRepository(db, log)
	require.NoError(t, err, "Failed to create content repository")

	runRepo, err := NewGormAutomationRunRepository(db, log)
	require.NoError(t, err, "Failed to create automation run repository")

	return &TestContext{
		DB:               db,
		OrderRepo:        orderRepo,
		LeadRepo:         leadRepo,
		ProductRepo:      productRepo,
		SubscriptionRepo: subscriptionRepo,
		KPIRepo:          kpiRepo,
		ContentRepo:      contentRepo,
		RunRepo:          runRepo,
	}
}

// CreateTestOrder creates a paid test order with default values
func CreateTestOrder(t *testing.T, gateway, transactionID string) *orders.Order {
	t.Helper()

	return &orders.Order{
		ID:                   uuid.NewString(),
		Gateway:              gateway,
		GatewayTransactionID: transactionID,
		Status:               orders.StatusPaid,
		AmountPence:          4700,
		BuyerEmail:           "buyer@example.com",
		BuyerName:            "Test Buyer",
		SKU:                  "COPYKIT-PRO",
		DateTimeCreated:      time.Now().UTC(),
	}
}

// CreateTestLead creates a test lead with default values
func CreateTestLead(t *testing.T, email string) *leads.Lead {
	t.Helper()

	return &leads.Lead{
		ID:              uuid.NewString(),
		Email:           email,
		Name:            "Test Lead",
		Source:          "landing-page",
		Tags:            []string{"newsletter"},
		DateTimeCreated: time.Now().UTC(),
	}
}

// CreateTestProduct creates an active test product with default values
func CreateTestProduct(t *testing.T, sku string) *products.Product {
	t.Helper()

	return &products.Product{
		ID:              uuid.NewString(),
		SKU:             sku,
		Name:            "Test Product",
		PricePence:      4700,
		Currency:        "GBP",
		Active:          true,
		DateTimeCreated: time.Now().UTC(),
	}
}

// CreateTestSubscription creates an active test subscription with default values
func CreateTestSubscription(t *testing.T, gateway, gatewaySubscriptionID string) *subscriptions.Subscription {
	t.Helper()

	periodEnd := time.Now().UTC().AddDate(0, 1, 0)
	return &subscriptions.Subscription{
		ID:                    uuid.NewString(),
		Gateway:               gateway,
		GatewaySubscriptionID: gatewaySubscriptionID,
		CustomerEmail:         "subscriber@example.com",
		SKU:                   "DAILYBRIEF-MONTHLY",
		Status:                subscriptions.StatusActive,
		CurrentPeriodStart:    time.Now().UTC(),
		CurrentPeriodEnd:      &periodEnd,
		DateTimeCreated:       time.Now().UTC(),
	}
}
