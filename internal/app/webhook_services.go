package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/automations"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/products"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/subscriptions"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"github.com/google/uuid"
)

// webhookProcessor implements the WebhookProcessor interface for applying
// verified gateway events to order and subscription state
type webhookProcessor struct {
	orderRepo          orders.OrderRepository
	subscriptionRepo   subscriptions.SubscriptionRepository
	productRepo        products.ProductRepository
	fulfillmentService orders.FulfillmentService
	receiptSender      orders.ReceiptSender
	runRepo            automations.RunRepository
	deduper            payments.EventDeduper
	logger             logger.Logger
}

// NewWebhookProcessor creates a new webhookProcessor instance
func NewWebhookProcessor(
	orderRepo orders.OrderRepository,
	subscriptionRepo subscriptions.SubscriptionRepository,
	productRepo products.ProductRepository,
	fulfillmentService orders.FulfillmentService,
	receiptSender orders.ReceiptSender,
	runRepo automations.RunRepository,
	deduper payments.EventDeduper,
	logger logger.Logger,
) (payments.WebhookProcessor, error) {
	return &webhookProcessor{
		orderRepo:          orderRepo,
		subscriptionRepo:   subscriptionRepo,
		productRepo:        productRepo,
		fulfillmentService: fulfillmentService,
		receiptSender:      receiptSender,
		runRepo:            runRepo,
		deduper:            deduper,
		logger:             logger,
	}, nil
}

// Process applies one verified event. Duplicate deliveries and events
// referencing unknown records are acknowledged without side effects so
// the gateway stops retrying them.
func (s *webhookProcessor) Process(ctx context.Context, event *payments.Event) error {
	if event.Kind == payments.EventIgnored {
		return nil
	}

	claimed, err := s.deduper.Claim(ctx, event.Gateway, event.ID)
	if err != nil {
		return fmt.Errorf("failed to claim event: %w", err)
	}
	if !claimed {
		s.logger.Info("Skipping already-processed event ", event.ID)
		return nil
	}

	if err := s.dispatch(ctx, event); err != nil {
		// The claim must not outlive a failed delivery, or the
		// gateway's retry of the same event ID is swallowed as a
		// duplicate.
		if relErr := s.deduper.Release(ctx, event.Gateway, event.ID); relErr != nil {
			s.logger.Warn("Failed to release claim for event ", event.ID, ": ", relErr)
		}
		return err
	}
	return nil
}

func (s *webhookProcessor) dispatch(ctx context.Context, event *payments.Event) error {
	switch event.Kind {
	case payments.EventCheckoutCompleted:
		return s.processCheckout(ctx, event)
	case payments.EventSubscriptionCreated:
		return s.processSubscriptionCreated(ctx, event)
	case payments.EventSubscriptionUpdated:
		return s.processSubscriptionUpdated(ctx, event)
	case payments.EventSubscriptionCancelled:
		return s.processSubscriptionCancelled(ctx, event)
	case payments.EventRefunded:
		return s.reconcileOrderStatus(ctx, event.Gateway, event.Refund.TransactionID, orders.StatusRefunded)
	case payments.EventDisputed:
		return s.reconcileOrderStatus(ctx, event.Gateway, event.Dispute.TransactionID, orders.StatusDisputed)
	default:
		return fmt.Errorf("unsupported event kind: %s", event.Kind)
	}
}

func (s *webhookProcessor) processCheckout(ctx context.Context, event *payments.Event) error {
	checkout := event.Checkout
	run := &automations.Run{
		ID:           uuid.NewString(),
		AutomationID: automations.AutomationCheckoutWebhooks,
		Name:         "Checkout Completed",
		Status:       automations.StatusCompleted,
		TriggerData:  map[string]any{"gateway": event.Gateway, "transaction_id": checkout.TransactionID},
		StartedAt:    time.Now().UTC(),
	}

	existing, err := s.orderRepo.GetByTransactionID(ctx, event.Gateway, checkout.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to check for existing order: %w", err)
	}
	if existing != nil {
		s.logger.Info("Order already exists for transaction ", checkout.TransactionID)
		return nil
	}

	order := &orders.Order{
		ID:                   uuid.NewString(),
		Gateway:              event.Gateway,
		GatewayTransactionID: checkout.TransactionID,
		Status:               orders.StatusPaid,
		AmountPence:          checkout.AmountPence,
		BuyerEmail:           checkout.BuyerEmail,
		BuyerName:            checkout.BuyerName,
		SKU:                  checkout.SKU,
		Metadata:             event.Raw,
		DateTimeCreated:      time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		run.Finish(automations.StatusFailed, err.Error())
		s.recordRun(ctx, run)
		return fmt.Errorf("failed to create order: %w", err)
	}

	product, err := s.productRepo.GetBySKU(ctx, checkout.SKU)
	if err != nil {
		s.logger.Warn("Failed to look up product for sku ", checkout.SKU, ": ", err)
	}

	// Fulfillment failure leaves the order paid-unfulfilled and the
	// delivery acked; the manual fulfilment endpoint retries it.
	if product != nil && product.FulfillmentWebhook != "" {
		if err := s.fulfillmentService.FulfillByOrderID(ctx, order.ID); err != nil {
			s.logger.Warn("Fulfillment failed for order ", order.ID, ": ", err)
		}
	}

	if err := s.receiptSender.SendReceipt(ctx, order, product); err != nil {
		s.logger.Warn("Failed to send receipt for order ", order.ID, ": ", err)
	}

	run.ExecutionData = map[string]any{"order_id": order.ID}
	run.Finish(automations.StatusCompleted, "")
	s.recordRun(ctx, run)

	s.logger.Info("Order created: ", order.ID, " for ", checkout.BuyerEmail)
	return nil
}

func (s *webhookProcessor) processSubscriptionCreated(ctx context.Context, event *payments.Event) error {
	sub := event.Subscription

	existing, err := s.subscriptionRepo.GetByGatewayID(ctx, sub.SubscriptionID)
	if err != nil {
		return fmt.Errorf("failed to check for existing subscription: %w", err)
	}
	if existing != nil {
		return s.applySubscriptionUpdate(ctx, existing, sub)
	}

	subscription := &subscriptions.Subscription{
		ID:                    uuid.NewString(),
		Gateway:               event.Gateway,
		GatewaySubscriptionID: sub.SubscriptionID,
		CustomerEmail:         sub.CustomerEmail,
		SKU:                   sub.SKU,
		Status:                sub.Status,
		CurrentPeriodStart:    sub.CurrentPeriodStart,
		CurrentPeriodEnd:      sub.CurrentPeriodEnd,
		CancelAtPeriodEnd:     sub.CancelAtPeriodEnd,
		DateTimeCreated:       time.Now().UTC(),
	}

	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	s.logger.Info("Subscription created: ", sub.SubscriptionID)
	return nil
}

func (s *webhookProcessor) processSubscriptionUpdated(ctx context.Context, event *payments.Event) error {
	sub := event.Subscription

	existing, err := s.subscriptionRepo.GetByGatewayID(ctx, sub.SubscriptionID)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("update for unknown subscription %s", sub.SubscriptionID)
	}

	return s.applySubscriptionUpdate(ctx, existing, sub)
}

func (s *webhookProcessor) applySubscriptionUpdate(ctx context.Context, existing *subscriptions.Subscription, sub *payments.SubscriptionEvent) error {
	existing.Status = sub.Status
	existing.CurrentPeriodStart = sub.CurrentPeriodStart
	existing.CurrentPeriodEnd = sub.CurrentPeriodEnd
	existing.CancelAtPeriodEnd = sub.CancelAtPeriodEnd

	if err := s.subscriptionRepo.UpdateByID(ctx, existing); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	s.logger.Info("Subscription updated: ", existing.GatewaySubscriptionID)
	return nil
}

func (s *webhookProcessor) processSubscriptionCancelled(ctx context.Context, event *payments.Event) error {
	sub := event.Subscription

	existing, err := s.subscriptionRepo.GetByGatewayID(ctx, sub.SubscriptionID)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("cancellation for unknown subscription %s", sub.SubscriptionID)
	}

	now := time.Now().UTC()
	existing.Status = subscriptions.StatusCancelled
	existing.CancelledAt = &now

	if err := s.subscriptionRepo.UpdateByID(ctx, existing); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	s.logger.Info("Subscription cancelled: ", existing.GatewaySubscriptionID)
	return nil
}

// reconcileOrderStatus moves an order to refunded or disputed. Unknown
// transactions are acknowledged without change.
func (s *webhookProcessor) reconcileOrderStatus(ctx context.Context, gateway, transactionID, status string) error {
	order, err := s.orderRepo.GetByTransactionID(ctx, gateway, transactionID)
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		s.logger.Warn("No order found for transaction ", transactionID)
		return nil
	}

	order.Status = status
	if err := s.orderRepo.UpdateByID(ctx, order); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Info("Order ", order.ID, " moved to ", status)
	return nil
}

func (s *webhookProcessor) recordRun(ctx context.Context, run *automations.Run) {
	if err := s.runRepo.Create(ctx, run); err != nil {
		s.logger.Warn("Failed to record automation run: ", err)
	}
}
