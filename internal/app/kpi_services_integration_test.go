//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKPIService_Upsert_Normalizes_Date_And_Replaces_Row(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	midday := time.Date(2026, 1, 2, 14, 30, 0, 0, time.UTC)
	stored, err := services.KPIService.Upsert(ctx, &kpi.DailyKPI{
		Date:     midday,
		Visitors: 250,
		Leads:    12,
	})
	require.NoError(t, err)
	assert.Equal(t, kpi.Day(midday), stored.Date)
	assert.Equal(t, int64(250), stored.Visitors)

	replaced, err := services.KPIService.Upsert(ctx, &kpi.DailyKPI{
		Date:     midday,
		Visitors: 300,
		Leads:    15,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(300), replaced.Visitors)

	recent, err := services.KPIService.ListRecent(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestKPIService_Rollup_Computes_Daily_Figures(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com"} {
		lead := persistence.CreateTestLead(t, email)
		require.NoError(t, services.DBContext.LeadRepo.Create(ctx, lead))
	}

	paid := persistence.CreateTestOrder(t, payments.GatewayStripe, "pi_1")
	require.NoError(t, services.DBContext.OrderRepo.Create(ctx, paid))

	refunded := persistence.CreateTestOrder(t, payments.GatewayStripe, "pi_2")
	refunded.Status = orders.StatusRefunded
	require.NoError(t, services.DBContext.OrderRepo.Create(ctx, refunded))

	daily, err := services.KPIService.Rollup(ctx, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, int64(4), daily.Leads)
	assert.Equal(t, int64(2), daily.Orders)
	assert.Equal(t, int64(1), daily.Refunds)
	assert.Equal(t, int64(4700), daily.GrossPence, "refunded orders excluded from gross")
	assert.Equal(t, 50.0, daily.ConversionPct)
}

func TestKPIService_Rollup_Past_Day_Excludes_Later_Activity(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	earlier := persistence.CreateTestLead(t, "yesterday@example.com")
	earlier.DateTimeCreated = yesterday
	require.NoError(t, services.DBContext.LeadRepo.Create(ctx, earlier))

	later := persistence.CreateTestLead(t, "today@example.com")
	require.NoError(t, services.DBContext.LeadRepo.Create(ctx, later))

	order := persistence.CreateTestOrder(t, payments.GatewayStripe, "pi_today")
	require.NoError(t, services.DBContext.OrderRepo.Create(ctx, order))

	daily, err := services.KPIService.Rollup(ctx, yesterday)
	require.NoError(t, err)

	assert.Equal(t, int64(1), daily.Leads, "today's lead stays out of yesterday's row")
	assert.Zero(t, daily.Orders)
	assert.Zero(t, daily.GrossPence)
}

func TestKPIService_Rollup_Preserves_Imported_Visitors(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	today := time.Now().UTC()
	_, err := services.KPIService.Upsert(ctx, &kpi.DailyKPI{Date: today, Visitors: 1200})
	require.NoError(t, err)

	daily, err := services.KPIService.Rollup(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), daily.Visitors)
}

func TestKPIService_Rollup_With_No_Activity(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	daily, err := services.KPIService.Rollup(context.Background(), time.Now().UTC())
	require.NoError(t, err)

	assert.Zero(t, daily.Leads)
	assert.Zero(t, daily.Orders)
	assert.Zero(t, daily.GrossPence)
	assert.Zero(t, daily.ConversionPct)
}
