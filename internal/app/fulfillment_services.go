package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/automations"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/products"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"github.com/google/uuid"
)

// fulfillmentService implements the FulfillmentService interface for
// routing paid orders to their delivery path by SKU prefix
type fulfillmentService struct {
	orderRepo          orders.OrderRepository
	workspaceConnector orders.WorkspaceConnector
	runRepo            automations.RunRepository
	logger             logger.Logger
}

// NewFulfillmentService creates a new fulfillmentService instance
func NewFulfillmentService(
	orderRepo orders.OrderRepository,
	workspaceConnector orders.WorkspaceConnector,
	runRepo automations.RunRepository,
	logger logger.Logger,
) (orders.FulfillmentService, error) {
	return &fulfillmentService{
		orderRepo:          orderRepo,
		workspaceConnector: workspaceConnector,
		runRepo:            runRepo,
		logger:             logger,
	}, nil
}

// FulfillByOrderID delivers the order's product and marks the order
// fulfilled. Orders with an unrecognized SKU prefix stay unfulfilled.
func (s *fulfillmentService) FulfillByOrderID(ctx context.Context, orderID string) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}

	switch {
	case products.IsCopyKitSKU(order.SKU):
		return s.fulfillCopyKit(ctx, order)
	case products.IsBriefingSKU(order.SKU):
		return s.fulfillBriefing(ctx, order)
	default:
		s.logger.Warn("Unknown SKU for fulfillment: ", order.SKU)
		return nil
	}
}

// fulfillCopyKit provisions the customer workspace and marks the order
// fulfilled.
func (s *fulfillmentService) fulfillCopyKit(ctx context.Context, order *orders.Order) error {
	run := s.newRun("CopyKit Fulfillment", order.ID)

	pageID, err := s.workspaceConnector.CreateWorkspace(ctx, order.BuyerEmail, order.SKU)
	if err != nil {
		run.Finish(automations.StatusFailed, err.Error())
		s.recordRun(ctx, run)
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	if err := s.markFulfilled(ctx, order); err != nil {
		run.Finish(automations.StatusFailed, err.Error())
		s.recordRun(ctx, run)
		return err
	}

	run.ExecutionData = map[string]any{"notion_page_id": pageID}
	run.Finish(automations.StatusCompleted, "")
	s.recordRun(ctx, run)

	s.logger.Info("CopyKit fulfilled for order ", order.ID)
	return nil
}

// fulfillBriefing grants briefing access. Access is keyed on the active
// subscription row, so fulfillment only marks the order.
func (s *fulfillmentService) fulfillBriefing(ctx context.Context, order *orders.Order) error {
	run := s.newRun("Briefing Fulfillment", order.ID)

	if err := s.markFulfilled(ctx, order); err != nil {
		run.Finish(automations.StatusFailed, err.Error())
		s.recordRun(ctx, run)
		return err
	}

	run.Finish(automations.StatusCompleted, "")
	s.recordRun(ctx, run)

	s.logger.Info("Briefing fulfilled for order ", order.ID)
	return nil
}

func (s *fulfillmentService) markFulfilled(ctx context.Context, order *orders.Order) error {
	now := time.Now().UTC()
	order.Fulfilled = true
	order.FulfilledAt = &now

	if err := s.orderRepo.UpdateByID(ctx, order); err != nil {
		return fmt.Errorf("failed to mark order fulfilled: %w", err)
	}
	return nil
}

func (s *fulfillmentService) newRun(name, orderID string) *automations.Run {
	return &automations.Run{
		ID:           uuid.NewString(),
		AutomationID: automations.AutomationFulfillment,
		Name:         name,
		Status:       automations.StatusCompleted,
		TriggerData:  map[string]any{"order_id": orderID},
		StartedAt:    time.Now().UTC(),
	}
}

func (s *fulfillmentService) recordRun(ctx context.Context, run *automations.Run) {
	if err := s.runRepo.Create(ctx, run); err != nil {
		s.logger.Warn("Failed to record automation run: ", err)
	}
}
