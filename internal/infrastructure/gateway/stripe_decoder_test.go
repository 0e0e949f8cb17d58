//go:build unit
// +build unit

package gateway

import (
	"net/http"
	"testing"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStripeDecoder(t *testing.T) payments.WebhookDecoder {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	decoder, err := NewStripeDecoder(&config.StripeSettings{SkipVerify: true}, log)
	require.NoError(t, err)
	return decoder
}

func TestStripeDecoder_CheckoutCompleted(t *testing.T) {
	decoder := setupStripeDecoder(t)

	payload := []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_1",
				"payment_intent": "pi_123",
				"customer_details": {"email": "buyer@example.com", "name": "Test Buyer"},
				"amount_total": 4700,
				"metadata": {"sku": "COPYKIT-PRO"}
			}
		}
	}`)

	event, err := decoder.DecodeAndVerify(payload, http.Header{})
	require.NoError(t, err)

	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, payments.GatewayStripe, event.Gateway)
	assert.Equal(t, payments.EventCheckoutCompleted, event.Kind)
	require.NotNil(t, event.Checkout)
	assert.Equal(t, "pi_123", event.Checkout.TransactionID)
	assert.Equal(t, "buyer@example.com", event.Checkout.BuyerEmail)
	assert.Equal(t, "Test Buyer", event.Checkout.BuyerName)
	assert.Equal(t, "COPYKIT-PRO", event.Checkout.SKU)
	assert.Equal(t, int64(4700), event.Checkout.AmountPence)
}

func TestStripeDecoder_CheckoutWithoutSKU(t *testing.T) {
	decoder := setupStripeDecoder(t)

	payload := []byte(`{
		"id": "evt_2",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"payment_intent": "pi_456",
				"customer_email": "direct@example.com",
				"amount_total": 900
			}
		}
	}`)

	event, err := decoder.DecodeAndVerify(payload, http.Header{})
	require.NoError(t, err)
	require.NotNil(t, event.Checkout)
	assert.Equal(t, "UNKNOWN", event.Checkout.SKU)
	assert.Equal(t, "direct@example.com", event.Checkout.BuyerEmail)
}

func TestStripeDecoder_SubscriptionCreated(t *testing.T) {
	decoder := setupStripeDecoder(t)

	payload := []byte(`{
		"id": "evt_3",
		"type": "customer.subscription.created",
		"data": {
			"object": {
				"id": "sub_1",
				"customer": "cus_1",
				"status": "active",
				"metadata": {"sku": "DAILYBRIEF-MONTHLY", "customer_email": "subscriber@example.com"},
				"current_period_start": 1756166400,
				"current_period_end": 1758844800,
				"cancel_at_period_end": false
			}
		}
	}`)

	event, err := decoder.DecodeAndVerify(payload, http.Header{})
	require.NoError(t, err)

	assert.Equal(t, payments.EventSubscriptionCreated, event.Kind)
	require.NotNil(t, event.Subscription)
	assert.Equal(t, "sub_1", event.Subscription.SubscriptionID)
	assert.Equal(t, "subscriber@example.com", event.Subscription.CustomerEmail)
	assert.Equal(t, "DAILYBRIEF-MONTHLY", event.Subscription.SKU)
	assert.Equal(t, "active", event.Subscription.Status)
	require.NotNil(t, event.Subscription.CurrentPeriodEnd)
	assert.False(t, event.Subscription.CancelAtPeriodEnd)
}

func TestStripeDecoder_Refund(t *testing.T) {
	decoder := setupStripeDecoder(t)

	payload := []byte(`{
		"id": "evt_4",
		"type": "charge.refunded",
		"data": {"object": {"payment_intent": "pi_123"}}
	}`)

	event, err := decoder.DecodeAndVerify(payload, http.Header{})
	require.NoError(t, err)
	assert.Equal(t, payments.EventRefunded, event.Kind)
	require.NotNil(t, event.Refund)
	assert.Equal(t, "pi_123", event.Refund.TransactionID)
}

func TestStripeDecoder_Dispute(t *testing.T) {
	decoder := setupStripeDecoder(t)

	payload := []byte(`{
		"id": "evt_5",
		"type": "charge.dispute.created",
		"data": {"object": {"payment_intent": "pi_789"}}
	}`)

	event, err := decoder.DecodeAndVerify(payload, http.Header{})
	require.NoError(t, err)
	assert.Equal(t, payments.EventDisputed, event.Kind)
	require.NotNil(t, event.Dispute)
	assert.Equal(t, "pi_789", event.Dispute.TransactionID)
}

func TestStripeDecoder_UnhandledEventIsIgnored(t *testing.T) {
	decoder := setupStripeDecoder(t)

	payload := []byte(`{
		"id": "evt_6",
		"type": "invoice.paid",
		"data": {"object": {}}
	}`)

	event, err := decoder.DecodeAndVerify(payload, http.Header{})
	require.NoError(t, err)
	assert.Equal(t, payments.EventIgnored, event.Kind)
}

func TestStripeDecoder_InvalidSignature(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	decoder, err := NewStripeDecoder(&config.StripeSettings{WebhookSecret: "whsec_test"}, log)
	require.NoError(t, err)

	header := http.Header{}
	header.Set("Stripe-Signature", "t=1,v1=bogus")

	_, err = decoder.DecodeAndVerify([]byte(`{"id":"evt_7","type":"charge.refunded"}`), header)
	require.Error(t, err)
	assert.ErrorIs(t, err, payments.ErrInvalidSignature)
}
