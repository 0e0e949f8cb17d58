//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBriefingService_GenerateDaily_Persists_Asset_And_Sends_Campaign(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	sub := persistence.CreateTestSubscription(t, "stripe", "sub_100")
	require.NoError(t, services.DBContext.SubscriptionRepo.Create(ctx, sub))

	services.Chat.Responses = []string{"the article body", "the email body"}

	result, err := services.BriefingService.GenerateDaily(ctx)
	require.NoError(t, err)

	assert.False(t, result.Partial)
	assert.NotEmpty(t, result.AssetID)
	assert.Equal(t, 2, result.MarketDataPoints)
	assert.Equal(t, 3, result.TrendingSources)
	assert.Equal(t, 1, result.Recipients)

	asset, err := services.DBContext.ContentRepo.GetByID(ctx, result.AssetID)
	require.NoError(t, err)
	assert.Equal(t, "the article body", asset.Content)
	assert.Equal(t, "the email body", asset.EmailVariant)
	assert.NotEmpty(t, asset.AudioURL)
	assert.NotEmpty(t, asset.VideoURL)

	require.Len(t, services.Campaigns.Recipients, 1)
	assert.Equal(t, []string{"subscriber@example.com"}, services.Campaigns.Recipients[0])
}

func TestBriefingService_GenerateDaily_Skips_Campaign_Without_Subscribers(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	result, err := services.BriefingService.GenerateDaily(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.Recipients)
	require.Len(t, services.Campaigns.Recipients, 1)
	assert.Empty(t, services.Campaigns.Recipients[0])
}

func TestBriefingService_GenerateDaily_Fails_When_Article_Generation_Fails(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	services.Chat.FailErr = errors.New("model unavailable")

	_, err := services.BriefingService.GenerateDaily(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "article generation failed")
}
