//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/automations"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomationRunModel_JSONColumns(t *testing.T) {
	run := &automations.Run{
		ID:           uuid.NewString(),
		AutomationID: automations.AutomationCheckoutWebhooks,
		Name:         "Checkout & Payment Webhooks",
		Status:       automations.StatusCompleted,
		TriggerData:  map[string]any{"gateway": "stripe", "event_id": "evt_123"},
		ExecutionData: map[string]any{
			"order_id":  "ord_1",
			"fulfilled": true,
		},
		StartedAt: time.Now().UTC(),
	}

	model := &AutomationRunModel{}
	model.FromDomain(run)

	require.NotEmpty(t, model.TriggerData)
	require.NotEmpty(t, model.ExecutionData)

	restored := model.ToDomain()
	assert.Equal(t, "stripe", restored.TriggerData["gateway"])
	assert.Equal(t, "ord_1", restored.ExecutionData["order_id"])
	assert.Equal(t, true, restored.ExecutionData["fulfilled"])
}

func TestAutomationRunModel_EmptyData(t *testing.T) {
	run := &automations.Run{
		ID:           uuid.NewString(),
		AutomationID: automations.AutomationLeadIntake,
		Name:         "Lead Capture & Nurture",
		Status:       automations.StatusFailed,
		ErrorMessage: "enrichment timeout",
		StartedAt:    time.Now().UTC(),
	}

	model := &AutomationRunModel{}
	model.FromDomain(run)

	assert.Empty(t, model.TriggerData)
	assert.Empty(t, model.ExecutionData)

	restored := model.ToDomain()
	assert.Nil(t, restored.TriggerData)
	assert.Equal(t, "enrichment timeout", restored.ErrorMessage)
}
