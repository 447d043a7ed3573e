package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order and its items atomically in a transaction.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order with its items by UUID.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// ListByCustomer returns all orders placed by a customer, newest first.
	ListByCustomer(ctx context.Context, customerEmail string) ([]*Order, error)

	// ListBySeller returns all orders containing at least one of the seller's items.
	ListBySeller(ctx context.Context, sellerEmail string) ([]*Order, error)

	// ListAll returns every order on the platform, newest first.
	ListAll(ctx context.Context) ([]*Order, error)

	// CustomerAggregates totals a customer's non-cancelled orders.
	CustomerAggregates(ctx context.Context, customerEmail string) (*CustomerSummary, error)

	// UpdateStatus advances an order to a new status; delivered orders also
	// get their delivery date stamped.
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
}
