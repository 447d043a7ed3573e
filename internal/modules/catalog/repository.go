package catalog

import "context"

// Repository defines data access for products.
type Repository interface {
	Create(ctx context.Context, p *Product) error

	GetByID(ctx context.Context, id string) (*Product, error)

	// ListActive returns active products, optionally restricted to a category.
	ListActive(ctx context.Context, category string) ([]*Product, error)

	// ListBySeller returns a seller's products, active ones only when activeOnly is set.
	ListBySeller(ctx context.Context, sellerEmail string, activeOnly bool) ([]*Product, error)

	Update(ctx context.Context, p *Product) error

	// SetActive flips the listing visibility without deleting history.
	SetActive(ctx context.Context, id string, active bool) error

	// AdjustInventory applies delta to the stock level, flooring at zero.
	AdjustInventory(ctx context.Context, id string, delta int) error
}
