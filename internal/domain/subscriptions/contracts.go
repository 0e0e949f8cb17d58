package subscriptions

import "context"

// SubscriptionRepository defines the interface for Subscription-related operations
type SubscriptionRepository interface {
	// Create adds a new Subscription to the database
	Create(ctx context.Context, subscription *Subscription) error
	// GetByGatewayID retrieves a Subscription by its gateway subscription ID
	GetByGatewayID(ctx context.Context, gatewaySubscriptionID string) (*Subscription, error)
	// UpdateByID updates a Subscription in the database by ID
	UpdateByID(ctx context.Context, subscription *Subscription) error
	// ListActiveBySKU lists active subscriptions for a SKU
	ListActiveBySKU(ctx context.Context, sku string) ([]*Subscription, error)
}
