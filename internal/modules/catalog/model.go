package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is an eco-rated listing offered by a seller.
type Product struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	Materials       string    `json:"materials,omitempty"`
	Manufacturing   string    `json:"manufacturing,omitempty"`
	ShippingMethod  string    `json:"shipping_method,omitempty"`
	EcoTags         []string  `json:"eco_tags,omitempty"`
	CarbonFootprint float64   `json:"carbon_footprint"` // kg CO2e
	EcoRating       string    `json:"eco_rating,omitempty"`
	Rating          float64   `json:"rating"`
	SellerEmail     string    `json:"seller_email"`
	ShopName        string    `json:"shop_name,omitempty"`
	Inventory       int       `json:"inventory"`
	ImageURLs       []string  `json:"image_urls,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateProductRequest holds the data for creating or updating a product.
type CreateProductRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Category        string   `json:"category"`
	Materials       string   `json:"materials"`
	Manufacturing   string   `json:"manufacturing"`
	ShippingMethod  string   `json:"shipping_method"`
	EcoTags         []string `json:"eco_tags"`
	CarbonFootprint float64  `json:"carbon_footprint"`
	EcoRating       string   `json:"eco_rating"`
	Inventory       int      `json:"inventory"`
	ImageURLs       []string `json:"image_urls"`
}

// BrowseQuery describes the customer-facing product listing filters.
type BrowseQuery struct {
	Search   string
	Category string // "all" or empty passes everything
	SortBy   string
}

// Sort modes accepted by Browse.
const (
	SortEcoRating = "eco_rating"
	SortPrice     = "price"
	SortRating    = "rating"
	SortCarbon    = "carbon"
)
