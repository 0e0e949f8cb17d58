package payments

import (
	"encoding/json"
	"time"
)

// Supported payment gateways
const (
	GatewayStripe = "stripe"
	GatewayPayPal = "paypal"
)

// EventKind identifies the gateway-neutral meaning of a webhook delivery.
type EventKind string

// Gateway-neutral event kinds
const (
	EventCheckoutCompleted     EventKind = "checkout.completed"
	EventSubscriptionCreated   EventKind = "subscription.created"
	EventSubscriptionUpdated   EventKind = "subscription.updated"
	EventSubscriptionCancelled EventKind = "subscription.cancelled"
	EventRefunded              EventKind = "refunded"
	EventDisputed              EventKind = "disputed"
	// EventIgnored marks deliveries the engine acknowledges without acting on.
	EventIgnored EventKind = "ignored"
)

// Event is a verified webhook delivery normalized across gateways.
// Exactly one of the payload fields matching Kind is set.
type Event struct {
	ID      string
	Gateway string
	Kind    EventKind

	Checkout     *CheckoutEvent
	Subscription *SubscriptionEvent
	Refund       *RefundEvent
	Dispute      *DisputeEvent

	// Raw is the gateway object the event was decoded from, kept for
	// the order metadata column.
	Raw json.RawMessage
}

// CheckoutEvent describes a completed one-off payment.
type CheckoutEvent struct {
	TransactionID string
	BuyerEmail    string
	BuyerName     string
	SKU           string
	AmountPence   int64
}

// SubscriptionEvent describes a subscription lifecycle change.
type SubscriptionEvent struct {
	SubscriptionID     string
	CustomerEmail      string
	SKU                string
	Status             string
	CurrentPeriodStart time.Time
	// CurrentPeriodEnd is nil when the gateway does not report it
	// upfront (PayPal on create).
	CurrentPeriodEnd  *time.Time
	CancelAtPeriodEnd bool
}

// RefundEvent references the refunded transaction.
type RefundEvent struct {
	TransactionID string
}

// DisputeEvent references the disputed transaction.
type DisputeEvent struct {
	TransactionID string
}
