package offer

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType distinguishes flat-amount from percentage discounts.
type DiscountType string

const (
	DiscountAmount  DiscountType = "amount"
	DiscountPercent DiscountType = "percent"
)

// Policy is one entry in the discount table an offer may draw.
type Policy struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// Offer is a time-bounded discounted view of one product. Offers are never
// persisted; they live until their expiry or the next catalog fetch.
type Offer struct {
	ID              uuid.UUID    `json:"id"`
	ProductID       string       `json:"product_id"`
	ProductName     string       `json:"product_name"`
	Description     string       `json:"description"`
	OriginalPrice   float64      `json:"original_price"`
	DiscountType    DiscountType `json:"discount_type"`
	DiscountValue   float64      `json:"discount_value"`
	DiscountedPrice float64      `json:"discounted_price"`
	DurationMs      int64        `json:"duration_ms"`
	CreatedAt       time.Time    `json:"created_at"`
	ExpiresAt       time.Time    `json:"expires_at"`
}

// Expired reports whether the offer's window has passed at the given instant.
func (o Offer) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
