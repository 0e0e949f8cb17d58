package products

import "context"

// ProductRepository defines the interface for Product-related operations
type ProductRepository interface {
	// Create adds a new Product to the database
	Create(ctx context.Context, product *Product) error
	// GetBySKU retrieves a Product by its unique SKU
	GetBySKU(ctx context.Context, sku string) (*Product, error)
	// List lists active Products
	List(ctx context.Context) ([]*Product, error)
	// UpdateByID updates a Product in the database by ID
	UpdateByID(ctx context.Context, product *Product) error
}
