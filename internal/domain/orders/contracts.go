package orders

import (
	"context"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/products"
)

// OrderRepository defines the interface for Order-related operations
type OrderRepository interface {
	// Create adds a new Order to the database
	Create(ctx context.Context, order *Order) error
	// List lists Orders in the database with optional filter
	List(ctx context.Context, query *OrderQuery) ([]*Order, error)
	// GetByID retrieves an Order from the database by ID
	GetByID(ctx context.Context, orderID string) (*Order, error)
	// GetByTransactionID retrieves an Order by gateway and gateway transaction ID
	GetByTransactionID(ctx context.Context, gateway, transactionID string) (*Order, error)
	// UpdateByID updates an Order in the database by ID
	UpdateByID(ctx context.Context, order *Order) error
	// CountBetween counts orders created in [start, end) and reports
	// how many are refunded and the summed gross in pence.
	CountBetween(ctx context.Context, start, end time.Time) (total int64, refunded int64, grossPence int64, err error)
}

// FulfillmentService dispatches product delivery for a paid order. The
// delivery route is chosen by SKU prefix.
type FulfillmentService interface {
	// FulfillByOrderID fulfills the order and marks it fulfilled.
	// It returns any error encountered during fulfillment.
	FulfillByOrderID(ctx context.Context, orderID string) error
}

// ReceiptSender sends the buyer a purchase receipt.
type ReceiptSender interface {
	SendReceipt(ctx context.Context, order *Order, product *products.Product) error
}

// WorkspaceConnector provisions a customer workspace in the content
// backend (Notion) as part of CopyKit fulfillment.
type WorkspaceConnector interface {
	// CreateWorkspace creates the workspace and returns its page ID.
	CreateWorkspace(ctx context.Context, customerEmail, sku string) (string, error)
}
