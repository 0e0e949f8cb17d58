//go:build integration
// +build integration

package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/subscriptions"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutEvent(eventID, transactionID string) *payments.Event {
	return &payments.Event{
		ID:      eventID,
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventCheckoutCompleted,
		Checkout: &payments.CheckoutEvent{
			TransactionID: transactionID,
			BuyerEmail:    "buyer@example.com",
			BuyerName:     "Test Buyer",
			SKU:           "COPYKIT-PRO",
			AmountPence:   4700,
		},
		Raw: json.RawMessage(`{"id":"cs_test_1"}`),
	}
}

func TestWebhookProcessor_Checkout_Creates_And_Fulfills_Order(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	product := persistence.CreateTestProduct(t, "COPYKIT-PRO")
	product.FulfillmentWebhook = "https://hooks.example.com/copykit"
	require.NoError(t, services.DBContext.ProductRepo.Create(ctx, product))

	err := services.WebhookProcessor.Process(ctx, checkoutEvent("evt_1", "pi_100"))
	require.NoError(t, err)

	order, err := services.DBContext.OrderRepo.GetByTransactionID(ctx, payments.GatewayStripe, "pi_100")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, orders.StatusPaid, order.Status)
	assert.Equal(t, int64(4700), order.AmountPence)
	assert.True(t, order.Fulfilled)
	assert.NotNil(t, order.FulfilledAt)

	assert.Equal(t, []string{"buyer@example.com"}, services.Workspace.Calls)
	assert.Equal(t, []string{"buyer@example.com"}, services.Receipts.Calls)
}

func TestWebhookProcessor_Checkout_Without_Fulfillment_Webhook_Leaves_Order_Unfulfilled(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	product := persistence.CreateTestProduct(t, "COPYKIT-PRO")
	require.NoError(t, services.DBContext.ProductRepo.Create(ctx, product))

	err := services.WebhookProcessor.Process(ctx, checkoutEvent("evt_1", "pi_100"))
	require.NoError(t, err)

	order, err := services.DBContext.OrderRepo.GetByTransactionID(ctx, payments.GatewayStripe, "pi_100")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.False(t, order.Fulfilled)
	assert.Empty(t, services.Workspace.Calls)
}

func TestWebhookProcessor_Checkout_Acks_When_Fulfillment_Fails(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	product := persistence.CreateTestProduct(t, "COPYKIT-PRO")
	product.FulfillmentWebhook = "https://hooks.example.com/copykit"
	require.NoError(t, services.DBContext.ProductRepo.Create(ctx, product))

	services.Workspace.FailErr = errors.New("notion unavailable")

	err := services.WebhookProcessor.Process(ctx, checkoutEvent("evt_1", "pi_100"))
	require.NoError(t, err, "delivery is acked, fulfilment is retryable")

	order, err := services.DBContext.OrderRepo.GetByTransactionID(ctx, payments.GatewayStripe, "pi_100")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.False(t, order.Fulfilled)
}

func TestWebhookProcessor_Checkout_Redelivery_Is_Idempotent(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, services.WebhookProcessor.Process(ctx, checkoutEvent("evt_1", "pi_100")))
	require.NoError(t, services.WebhookProcessor.Process(ctx, checkoutEvent("evt_2", "pi_100")))

	listed, err := services.DBContext.OrderRepo.List(ctx, orders.NewOrderQuery())
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestWebhookProcessor_Duplicate_Event_ID_Is_Skipped(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, services.WebhookProcessor.Process(ctx, checkoutEvent("evt_1", "pi_100")))
	require.NoError(t, services.WebhookProcessor.Process(ctx, checkoutEvent("evt_1", "pi_100")))

	listed, err := services.DBContext.OrderRepo.List(ctx, orders.NewOrderQuery())
	require.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Len(t, services.Receipts.Calls, 1, "second delivery of the same event sends nothing")
}

func TestWebhookProcessor_Failed_Delivery_Can_Be_Retried(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	update := &payments.Event{
		ID:      "evt_sub_sync",
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventSubscriptionUpdated,
		Subscription: &payments.SubscriptionEvent{
			SubscriptionID:     "sub_100",
			CustomerEmail:      "subscriber@example.com",
			SKU:                "DAILYBRIEF-MONTHLY",
			Status:             subscriptions.StatusPastDue,
			CurrentPeriodStart: time.Now().UTC(),
		},
	}

	// Out-of-order delivery: the update lands before the create and fails.
	require.Error(t, services.WebhookProcessor.Process(ctx, update))

	created := &payments.Event{
		ID:      "evt_sub_created",
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventSubscriptionCreated,
		Subscription: &payments.SubscriptionEvent{
			SubscriptionID:     "sub_100",
			CustomerEmail:      "subscriber@example.com",
			SKU:                "DAILYBRIEF-MONTHLY",
			Status:             subscriptions.StatusActive,
			CurrentPeriodStart: time.Now().UTC(),
		},
	}
	require.NoError(t, services.WebhookProcessor.Process(ctx, created))

	// The gateway retries the failed delivery with the same event ID.
	// It must apply now, not be dropped as a duplicate.
	require.NoError(t, services.WebhookProcessor.Process(ctx, update))

	stored, err := services.DBContext.SubscriptionRepo.GetByGatewayID(ctx, "sub_100")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, subscriptions.StatusPastDue, stored.Status)
}

func TestWebhookProcessor_Refund_Moves_Order_To_Refunded(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	order := persistence.CreateTestOrder(t, payments.GatewayStripe, "pi_100")
	require.NoError(t, services.DBContext.OrderRepo.Create(ctx, order))

	err := services.WebhookProcessor.Process(ctx, &payments.Event{
		ID:      "evt_refund",
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventRefunded,
		Refund:  &payments.RefundEvent{TransactionID: "pi_100"},
	})
	require.NoError(t, err)

	updated, err := services.DBContext.OrderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusRefunded, updated.Status)
}

func TestWebhookProcessor_Dispute_Moves_Order_To_Disputed(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	order := persistence.CreateTestOrder(t, payments.GatewayStripe, "pi_100")
	require.NoError(t, services.DBContext.OrderRepo.Create(ctx, order))

	err := services.WebhookProcessor.Process(ctx, &payments.Event{
		ID:      "evt_dispute",
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventDisputed,
		Dispute: &payments.DisputeEvent{TransactionID: "pi_100"},
	})
	require.NoError(t, err)

	updated, err := services.DBContext.OrderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusDisputed, updated.Status)
}

func TestWebhookProcessor_Refund_For_Unknown_Transaction_Is_Acknowledged(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	err := services.WebhookProcessor.Process(context.Background(), &payments.Event{
		ID:      "evt_refund",
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventRefunded,
		Refund:  &payments.RefundEvent{TransactionID: "pi_missing"},
	})
	assert.NoError(t, err)
}

func TestWebhookProcessor_Subscription_Lifecycle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	start := time.Now().UTC().Truncate(time.Second)
	created := &payments.Event{
		ID:      "evt_sub_created",
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventSubscriptionCreated,
		Subscription: &payments.SubscriptionEvent{
			SubscriptionID:     "sub_100",
			CustomerEmail:      "subscriber@example.com",
			SKU:                "DAILYBRIEF-MONTHLY",
			Status:             subscriptions.StatusActive,
			CurrentPeriodStart: start,
		},
	}
	require.NoError(t, services.WebhookProcessor.Process(ctx, created))

	stored, err := services.DBContext.SubscriptionRepo.GetByGatewayID(ctx, "sub_100")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, subscriptions.StatusActive, stored.Status)
	assert.Nil(t, stored.CurrentPeriodEnd)

	periodEnd := start.AddDate(0, 1, 0)
	updated := &payments.Event{
		ID:      "evt_sub_updated",
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventSubscriptionUpdated,
		Subscription: &payments.SubscriptionEvent{
			SubscriptionID:     "sub_100",
			CustomerEmail:      "subscriber@example.com",
			SKU:                "DAILYBRIEF-MONTHLY",
			Status:             subscriptions.StatusActive,
			CurrentPeriodStart: start,
			CurrentPeriodEnd:   &periodEnd,
		},
	}
	require.NoError(t, services.WebhookProcessor.Process(ctx, updated))

	stored, err = services.DBContext.SubscriptionRepo.GetByGatewayID(ctx, "sub_100")
	require.NoError(t, err)
	require.NotNil(t, stored.CurrentPeriodEnd)

	cancelled := &payments.Event{
		ID:      "evt_sub_cancelled",
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventSubscriptionCancelled,
		Subscription: &payments.SubscriptionEvent{
			SubscriptionID: "sub_100",
			Status:         subscriptions.StatusCancelled,
		},
	}
	require.NoError(t, services.WebhookProcessor.Process(ctx, cancelled))

	stored, err = services.DBContext.SubscriptionRepo.GetByGatewayID(ctx, "sub_100")
	require.NoError(t, err)
	assert.Equal(t, subscriptions.StatusCancelled, stored.Status)
	assert.NotNil(t, stored.CancelledAt)
}

func TestWebhookProcessor_Subscription_Update_For_Unknown_Subscription_Fails(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	err := services.WebhookProcessor.Process(context.Background(), &payments.Event{
		ID:      "evt_sub_updated",
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventSubscriptionUpdated,
		Subscription: &payments.SubscriptionEvent{
			SubscriptionID: "sub_missing",
			Status:         subscriptions.StatusActive,
		},
	})
	assert.ErrorContains(t, err, "unknown subscription")
}

func TestWebhookProcessor_Ignored_Event_Is_NoOp(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	err := services.WebhookProcessor.Process(ctx, &payments.Event{
		ID:      "evt_ignored",
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventIgnored,
	})
	require.NoError(t, err)

	listed, err := services.DBContext.OrderRepo.List(ctx, orders.NewOrderQuery())
	require.NoError(t, err)
	assert.Empty(t, listed)
}
