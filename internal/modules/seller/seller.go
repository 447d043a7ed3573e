package seller

import (
	"context"
	"time"
)

// Stats aggregates one seller's trading history on the platform.
type Stats struct {
	SellerEmail     string    `json:"seller_email"`
	TotalRevenue    float64   `json:"total_revenue"`
	PendingPayouts  float64   `json:"pending_payouts"`
	TotalSales      int       `json:"total_sales"` // units sold
	CompletedOrders int       `json:"completed_orders"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Profile holds the storefront details a seller fills in after registering.
type Profile struct {
	SellerEmail       string    `json:"seller_email"`
	Name              string    `json:"name"`
	StoreName         string    `json:"store_name"`
	ProductCategories []string  `json:"product_categories"`
	Description       string    `json:"description,omitempty"`
	PhoneNumber       string    `json:"phone_number,omitempty"`
	Address           string    `json:"address,omitempty"`
	Website           string    `json:"website,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProfileRequest is the payload for completing or updating a seller profile.
type ProfileRequest struct {
	Name              string   `json:"name"`
	StoreName         string   `json:"store_name"`
	ProductCategories []string `json:"product_categories"`
	Description       string   `json:"description"`
	PhoneNumber       string   `json:"phone_number"`
	Address           string   `json:"address"`
	Website           string   `json:"website"`
}

// Repository defines data access for seller stats and profiles.
type Repository interface {
	// GetBySeller returns the seller's stats row, zero-valued if none exists yet.
	GetBySeller(ctx context.Context, sellerEmail string) (*Stats, error)

	// ApplySale adds a delivered order's share to the seller's running totals.
	ApplySale(ctx context.Context, sellerEmail string, amount float64, units int) error

	// SettlePayouts zeroes the pending payout balance.
	SettlePayouts(ctx context.Context, sellerEmail string) error

	// GetProfile returns the seller's profile, or nil if not completed yet.
	GetProfile(ctx context.Context, sellerEmail string) (*Profile, error)

	// SaveProfile inserts or updates the seller's profile.
	SaveProfile(ctx context.Context, p *Profile) error
}
