//go:build unit
// +build unit

package connector

import (
	"context"
	"net/smtp"
	"testing"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/products"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPConnector_DisabledDropsSends(t *testing.T) {
	conn, err := NewSMTPConnector(&config.SMTPSettings{Enabled: false}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	called := false
	conn.send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	err = conn.SendCampaign(context.Background(), "Daily Briefing", "body", []string{"a@example.com"})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestSMTPConnector_SendReceipt(t *testing.T) {
	settings := &config.SMTPSettings{
		Enabled: true,
		Host:    "localhost",
		Port:    2525,
		From:    "receipts@example.com",
	}
	conn, err := NewSMTPConnector(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	var sentTo []string
	var sentMsg string
	conn.send = func(_ string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		sentTo = to
		sentMsg = string(msg)
		return nil
	}

	order := &orders.Order{
		ID:                   uuid.NewString(),
		Gateway:              "stripe",
		GatewayTransactionID: "pi_1",
		Status:               orders.StatusPaid,
		AmountPence:          4700,
		BuyerEmail:           "buyer@example.com",
		BuyerName:            "Test Buyer",
		SKU:                  "COPYKIT-PRO",
		DateTimeCreated:      time.Now().UTC(),
	}
	product := &products.Product{Name: "CopyKit Pro"}

	require.NoError(t, conn.SendReceipt(context.Background(), order, product))
	assert.Equal(t, []string{"buyer@example.com"}, sentTo)
	assert.Contains(t, sentMsg, "CopyKit Pro")
	assert.Contains(t, sentMsg, "£47.00")
}

func TestSMTPConnector_SendCampaign_One_Message_Per_Recipient(t *testing.T) {
	settings := &config.SMTPSettings{
		Enabled: true,
		Host:    "localhost",
		Port:    2525,
		From:    "briefing@example.com",
	}
	conn, err := NewSMTPConnector(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	var sentTo [][]string
	var sentMsgs []string
	conn.send = func(_ string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		sentTo = append(sentTo, to)
		sentMsgs = append(sentMsgs, string(msg))
		return nil
	}

	recipients := []string{"a@example.com", "b@example.com"}
	require.NoError(t, conn.SendCampaign(context.Background(), "Daily Briefing", "body", recipients))

	require.Len(t, sentTo, 2)
	assert.Equal(t, []string{"a@example.com"}, sentTo[0])
	assert.Equal(t, []string{"b@example.com"}, sentTo[1])
	assert.NotContains(t, sentMsgs[0], "b@example.com", "recipients must not see each other")
	assert.NotContains(t, sentMsgs[1], "a@example.com", "recipients must not see each other")
}

func TestSMTPConnector_SendCampaign_NoRecipients(t *testing.T) {
	settings := &config.SMTPSettings{
		Enabled: true,
		Host:    "localhost",
		Port:    2525,
		From:    "briefing@example.com",
	}
	conn, err := NewSMTPConnector(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	called := false
	conn.send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	require.NoError(t, conn.SendCampaign(context.Background(), "Daily Briefing", "body", nil))
	assert.False(t, called)
}
