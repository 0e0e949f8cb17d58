// Package cache provides the Redis-backed webhook event dedup store.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"github.com/go-redis/redis/v8"
)

type redisEventDeduper struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisEventDeduper creates an EventDeduper backed by Redis SETNX.
// Gateways retry deliveries for roughly a day, so the claim TTL bounds
// memory without reopening the replay window.
func NewRedisEventDeduper(settings *config.RedisSettings, logger logger.Logger) (payments.EventDeduper, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid redis settings: %w", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", settings.Addr, err)
	}

	ttl := time.Duration(settings.ClaimTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &redisEventDeduper{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (d *redisEventDeduper) Claim(ctx context.Context, gateway, eventID string) (bool, error) {
	claimed, err := d.client.SetNX(ctx, claimKey(gateway, eventID), 1, d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim event %s: %w", eventID, err)
	}

	if !claimed {
		d.logger.Info("Duplicate webhook delivery for event ", eventID)
	}
	return claimed, nil
}

func (d *redisEventDeduper) Release(ctx context.Context, gateway, eventID string) error {
	if err := d.client.Del(ctx, claimKey(gateway, eventID)).Err(); err != nil {
		return fmt.Errorf("failed to release event %s: %w", eventID, err)
	}
	return nil
}

func claimKey(gateway, eventID string) string {
	return fmt.Sprintf("webhook:evt:%s:%s", gateway, eventID)
}

type noopEventDeduper struct{}

// NewNoopEventDeduper creates an EventDeduper that claims every event.
// Used when the Redis cache is disabled; the unique transaction index
// still guards against duplicate orders.
func NewNoopEventDeduper() payments.EventDeduper {
	return &noopEventDeduper{}
}

func (d *noopEventDeduper) Claim(_ context.Context, _, _ string) (bool, error) {
	return true, nil
}

func (d *noopEventDeduper) Release(_ context.Context, _, _ string) error {
	return nil
}
