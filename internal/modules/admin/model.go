package admin

import (
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/seller"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/user"
)

// SellerEmission is one seller's slice of the platform carbon report.
type SellerEmission struct {
	SellerEmail  string  `json:"seller_email"`
	ShopName     string  `json:"shop_name,omitempty"`
	ProductCount int     `json:"product_count"`
	TotalCarbon  float64 `json:"total_carbon"` // kg CO2e across listed products
	TotalRevenue float64 `json:"total_revenue"`
}

// CarbonReport is the platform-wide emission overview shown on the admin dashboard.
type CarbonReport struct {
	TotalSellers   int              `json:"total_sellers"`
	TotalCustomers int              `json:"total_customers"`
	TotalProducts  int              `json:"total_products"`
	TotalCarbon    float64          `json:"total_carbon"`
	Sellers        []SellerEmission `json:"sellers"`
}

// SellerDetails pairs a seller account with its storefront profile.
// Profile is nil until the seller completes it.
type SellerDetails struct {
	User    *user.User      `json:"user"`
	Profile *seller.Profile `json:"profile"`
}

// CustomerOverview is one customer row with their order aggregates.
type CustomerOverview struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name,omitempty"`
	Orders      int     `json:"orders"`
	TotalSpent  float64 `json:"total_spent"`
	CarbonSaved float64 `json:"carbon_saved"`
}
