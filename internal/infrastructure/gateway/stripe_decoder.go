package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

type stripeDecoder struct {
	settings *config.StripeSettings
	api      *client.API
	logger   logger.Logger
}

// NewStripeDecoder creates a WebhookDecoder for Stripe deliveries
func NewStripeDecoder(settings *config.StripeSettings, logger logger.Logger) (payments.WebhookDecoder, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stripe settings: %w", err)
	}

	var api *client.API
	if settings.APIKey != "" {
		api = &client.API{}
		api.Init(settings.APIKey, nil)
	}

	return &stripeDecoder{
		settings: settings,
		api:      api,
		logger:   logger,
	}, nil
}

// stripeCheckoutSession carries the checkout.session fields the engine
// consumes.
type stripeCheckoutSession struct {
	ID              string `json:"id"`
	PaymentIntent   string `json:"payment_intent"`
	CustomerEmail   string `json:"customer_email"`
	CustomerDetails struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"customer_details"`
	AmountTotal int64             `json:"amount_total"`
	Metadata    map[string]string `json:"metadata"`
}

type stripeSubscription struct {
	ID                 string            `json:"id"`
	Customer           string            `json:"customer"`
	Status             string            `json:"status"`
	Metadata           map[string]string `json:"metadata"`
	CurrentPeriodStart int64             `json:"current_period_start"`
	CurrentPeriodEnd   int64             `json:"current_period_end"`
	CancelAtPeriodEnd  bool              `json:"cancel_at_period_end"`
}

type stripeCharge struct {
	PaymentIntent string `json:"payment_intent"`
}

func (d *stripeDecoder) DecodeAndVerify(payload []byte, header http.Header) (*payments.Event, error) {
	var event stripe.Event

	if d.settings.SkipVerify {
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("failed to parse stripe event: %w", err)
		}
	} else {
		var err error
		event, err = webhook.ConstructEvent(payload, header.Get("Stripe-Signature"), d.settings.WebhookSecret)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", payments.ErrInvalidSignature, err)
		}
	}

	normalized := &payments.Event{
		ID:      event.ID,
		Gateway: payments.GatewayStripe,
		Raw:     json.RawMessage(event.Data.Raw),
	}

	switch string(event.Type) {
	case "checkout.session.completed":
		var session stripeCheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to parse checkout session: %w", err)
		}
		normalized.Kind = payments.EventCheckoutCompleted
		normalized.Checkout = d.checkoutFromSession(&session)

	case "customer.subscription.created":
		sub, err := d.subscriptionFromRaw(event.Data.Raw)
		if err != nil {
			return nil, err
		}
		normalized.Kind = payments.EventSubscriptionCreated
		normalized.Subscription = sub

	case "customer.subscription.updated":
		sub, err := d.subscriptionFromRaw(event.Data.Raw)
		if err != nil {
			return nil, err
		}
		normalized.Kind = payments.EventSubscriptionUpdated
		normalized.Subscription = sub

	case "customer.subscription.deleted":
		sub, err := d.subscriptionFromRaw(event.Data.Raw)
		if err != nil {
			return nil, err
		}
		normalized.Kind = payments.EventSubscriptionCancelled
		normalized.Subscription = sub

	case "charge.refunded":
		var charge stripeCharge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return nil, fmt.Errorf("failed to parse charge: %w", err)
		}
		normalized.Kind = payments.EventRefunded
		normalized.Refund = &payments.RefundEvent{TransactionID: charge.PaymentIntent}

	case "charge.dispute.created":
		var charge stripeCharge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return nil, fmt.Errorf("failed to parse charge: %w", err)
		}
		normalized.Kind = payments.EventDisputed
		normalized.Dispute = &payments.DisputeEvent{TransactionID: charge.PaymentIntent}

	default:
		d.logger.Info("Ignoring stripe event of type ", string(event.Type))
		normalized.Kind = payments.EventIgnored
	}

	return normalized, nil
}

func (d *stripeDecoder) checkoutFromSession(session *stripeCheckoutSession) *payments.CheckoutEvent {
	email := session.CustomerEmail
	if email == "" {
		email = session.CustomerDetails.Email
	}

	sku := session.Metadata["sku"]
	if sku == "" {
		sku = "UNKNOWN"
	}

	return &payments.CheckoutEvent{
		TransactionID: session.PaymentIntent,
		BuyerEmail:    email,
		BuyerName:     session.CustomerDetails.Name,
		SKU:           sku,
		AmountPence:   session.AmountTotal,
	}
}

func (d *stripeDecoder) subscriptionFromRaw(raw []byte) (*payments.SubscriptionEvent, error) {
	var sub stripeSubscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, fmt.Errorf("failed to parse subscription: %w", err)
	}

	sku := sub.Metadata["sku"]
	if sku == "" {
		sku = "UNKNOWN"
	}

	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0).UTC()

	return &payments.SubscriptionEvent{
		SubscriptionID:     sub.ID,
		CustomerEmail:      d.customerEmail(&sub),
		SKU:                sku,
		Status:             sub.Status,
		CurrentPeriodStart: time.Unix(sub.CurrentPeriodStart, 0).UTC(),
		CurrentPeriodEnd:   &periodEnd,
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
	}, nil
}

// customerEmail resolves the subscriber email. The subscription object
// itself does not carry it, so it comes from a customer lookup or from
// the checkout metadata stamped onto the subscription.
func (d *stripeDecoder) customerEmail(sub *stripeSubscription) string {
	if d.api != nil && sub.Customer != "" {
		customer, err := d.api.Customers.Get(sub.Customer, nil)
		if err != nil {
			d.logger.Warn("Failed to fetch stripe customer ", sub.Customer, ": ", err)
		} else if customer.Email != "" {
			return customer.Email
		}
	}
	return sub.Metadata["customer_email"]
}
