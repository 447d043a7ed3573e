package order

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// Order represents a customer's purchase.
type Order struct {
	ID              uuid.UUID    `json:"id"`
	CustomerEmail   string       `json:"customer_email"`
	TrackingNumber  string       `json:"tracking_number"`
	Status          OrderStatus  `json:"status"`
	Items           []*OrderItem `json:"items,omitempty"`
	TotalAmount     float64      `json:"total_amount"`
	CarbonSaved     float64      `json:"carbon_saved"` // kg CO2e across all items
	ShippingAddress string       `json:"shipping_address,omitempty"`
	PaymentMethod   string       `json:"payment_method,omitempty"`
	OrderDate       time.Time    `json:"order_date"`
	DeliveryDate    *time.Time   `json:"delivery_date,omitempty"`
}

// OrderItem is a single line item within an order. Seller details are
// denormalized from the catalog at placement time.
type OrderItem struct {
	ID              uuid.UUID `json:"id"`
	OrderID         uuid.UUID `json:"order_id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	ShopName        string    `json:"shop_name,omitempty"`
	SellerEmail     string    `json:"seller_email"`
	Category        string    `json:"category,omitempty"`
	Quantity        int       `json:"quantity"`
	Price           float64   `json:"price"`
	CarbonFootprint float64   `json:"carbon_footprint"`
}

// CustomerSummary aggregates a customer's purchase history. Cancelled orders
// are excluded from every figure.
type CustomerSummary struct {
	CustomerEmail string  `json:"customer_email"`
	Orders        int     `json:"orders"`
	TotalSpent    float64 `json:"total_spent"`
	CarbonSaved   float64 `json:"carbon_saved"`
}

// PlaceOrderRequest is the payload for checkout. The items come from the
// customer's server-side cart, not the request body.
type PlaceOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
