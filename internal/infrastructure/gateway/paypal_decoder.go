package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/utils"
)

type paypalDecoder struct {
	settings   *config.PayPalSettings
	httpClient *http.Client
	logger     logger.Logger
}

// NewPayPalDecoder creates a WebhookDecoder for PayPal deliveries
func NewPayPalDecoder(settings *config.PayPalSettings, logger logger.Logger) (payments.WebhookDecoder, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid paypal settings: %w", err)
	}

	return &paypalDecoder{
		settings:   settings,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}, nil
}

type paypalEvent struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Resource  json.RawMessage `json:"resource"`
}

type paypalPayment struct {
	ID    string `json:"id"`
	Payer struct {
		EmailAddress string `json:"email_address"`
		Name         struct {
			GivenName string `json:"given_name"`
			Surname   string `json:"surname"`
		} `json:"name"`
	} `json:"payer"`
	Amount struct {
		Value string `json:"value"`
	} `json:"amount"`
	CustomID string `json:"custom_id"`
}

type paypalSubscription struct {
	ID         string `json:"id"`
	CustomID   string `json:"custom_id"`
	StartTime  string `json:"start_time"`
	Subscriber struct {
		EmailAddress string `json:"email_address"`
	} `json:"subscriber"`
}

func (d *paypalDecoder) DecodeAndVerify(payload []byte, header http.Header) (*payments.Event, error) {
	if !d.settings.SkipVerify {
		if err := d.verifySignature(payload, header); err != nil {
			return nil, err
		}
	}

	var event paypalEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse paypal event: %w", err)
	}

	normalized := &payments.Event{
		ID:      event.ID,
		Gateway: payments.GatewayPayPal,
		Raw:     event.Resource,
	}

	switch event.EventType {
	case "PAYMENT.CAPTURE.COMPLETED":
		checkout, err := d.checkoutFromResource(event.Resource)
		if err != nil {
			return nil, err
		}
		normalized.Kind = payments.EventCheckoutCompleted
		normalized.Checkout = checkout

	case "BILLING.SUBSCRIPTION.CREATED":
		sub, err := d.subscriptionFromResource(event.Resource)
		if err != nil {
			return nil, err
		}
		normalized.Kind = payments.EventSubscriptionCreated
		normalized.Subscription = sub

	case "BILLING.SUBSCRIPTION.CANCELLED":
		sub, err := d.subscriptionFromResource(event.Resource)
		if err != nil {
			return nil, err
		}
		normalized.Kind = payments.EventSubscriptionCancelled
		normalized.Subscription = sub

	case "PAYMENT.CAPTURE.REFUNDED":
		var payment paypalPayment
		if err := json.Unmarshal(event.Resource, &payment); err != nil {
			return nil, fmt.Errorf("failed to parse paypal payment: %w", err)
		}
		normalized.Kind = payments.EventRefunded
		normalized.Refund = &payments.RefundEvent{TransactionID: payment.ID}

	default:
		d.logger.Info("Ignoring paypal event of type ", event.EventType)
		normalized.Kind = payments.EventIgnored
	}

	return normalized, nil
}

func (d *paypalDecoder) checkoutFromResource(resource json.RawMessage) (*payments.CheckoutEvent, error) {
	var payment paypalPayment
	if err := json.Unmarshal(resource, &payment); err != nil {
		return nil, fmt.Errorf("failed to parse paypal payment: %w", err)
	}

	amountPence, err := utils.ParsePenceFromDecimal(payment.Amount.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse paypal amount: %w", err)
	}

	sku := payment.CustomID
	if sku == "" {
		sku = "UNKNOWN"
	}

	name := strings.TrimSpace(payment.Payer.Name.GivenName + " " + payment.Payer.Name.Surname)

	return &payments.CheckoutEvent{
		TransactionID: payment.ID,
		BuyerEmail:    payment.Payer.EmailAddress,
		BuyerName:     name,
		SKU:           sku,
		AmountPence:   amountPence,
	}, nil
}

// subscriptionFromResource leaves CurrentPeriodEnd nil: PayPal does not
// report the period end upfront.
func (d *paypalDecoder) subscriptionFromResource(resource json.RawMessage) (*payments.SubscriptionEvent, error) {
	var sub paypalSubscription
	if err := json.Unmarshal(resource, &sub); err != nil {
		return nil, fmt.Errorf("failed to parse paypal subscription: %w", err)
	}

	sku := sub.CustomID
	if sku == "" {
		sku = "UNKNOWN"
	}

	start := time.Now().UTC()
	if sub.StartTime != "" {
		if parsed, err := time.Parse(time.RFC3339, sub.StartTime); err == nil {
			start = parsed.UTC()
		}
	}

	return &payments.SubscriptionEvent{
		SubscriptionID:     sub.ID,
		CustomerEmail:      sub.Subscriber.EmailAddress,
		SKU:                sku,
		Status:             "active",
		CurrentPeriodStart: start,
	}, nil
}

// verifySignature calls the PayPal verify-webhook-signature endpoint
// with the transmission headers of the delivery.
func (d *paypalDecoder) verifySignature(payload []byte, header http.Header) error {
	token, err := d.accessToken()
	if err != nil {
		return fmt.Errorf("failed to obtain paypal access token: %w", err)
	}

	body := map[string]any{
		"auth_algo":         header.Get("Paypal-Auth-Algo"),
		"cert_url":          header.Get("Paypal-Cert-Url"),
		"transmission_id":   header.Get("Paypal-Transmission-Id"),
		"transmission_sig":  header.Get("Paypal-Transmission-Sig"),
		"transmission_time": header.Get("Paypal-Transmission-Time"),
		"webhook_id":        d.settings.WebhookID,
		"webhook_event":     json.RawMessage(payload),
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode verification request: %w", err)
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		d.settings.APIBase+"/v1/notifications/verify-webhook-signature", bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed to build verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("verification request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var result struct {
		VerificationStatus string `json:"verification_status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode verification response: %w", err)
	}

	if result.VerificationStatus != "SUCCESS" {
		return payments.ErrInvalidSignature
	}
	return nil
}

func (d *paypalDecoder) accessToken() (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		d.settings.APIBase+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(d.settings.ClientID, d.settings.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	return result.AccessToken, nil
}
