package cart

import (
	"context"
	"fmt"

	"github.com/ecobazaar/ecobazaar-backend/internal/modules/catalog"
	"github.com/sirupsen/logrus"
)

// Summary is the display-ready view of a cart.
type Summary struct {
	Items       []Item  `json:"items"`
	LineCount   int     `json:"line_count"`
	Total       float64 `json:"total"`
	CarbonSaved float64 `json:"carbon_saved"`
}

// Service defines cart business logic.
type Service interface {
	View(ctx context.Context, customerEmail string) (*Summary, error)
	AddProduct(ctx context.Context, customerEmail, productID string) (*Summary, error)
	SetQuantity(ctx context.Context, customerEmail, productID string, quantity int) (*Summary, error)
	RemoveProduct(ctx context.Context, customerEmail, productID string) (*Summary, error)
	Clear(ctx context.Context, customerEmail string) error

	// Ledger exposes the raw cart for checkout.
	Ledger(ctx context.Context, customerEmail string) (*Ledger, error)
}

type service struct {
	store    Store
	products catalog.Service
	log      *logrus.Logger
}

// NewService creates a new cart service.
func NewService(store Store, products catalog.Service, log *logrus.Logger) Service {
	return &service{store: store, products: products, log: log}
}

func (s *service) View(ctx context.Context, customerEmail string) (*Summary, error) {
	l, err := s.store.Load(ctx, customerEmail)
	if err != nil {
		return nil, err
	}
	return summarize(l), nil
}

func (s *service) AddProduct(ctx context.Context, customerEmail, productID string) (*Summary, error) {
	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}
	if !p.IsActive {
		return nil, fmt.Errorf("product %s is no longer available", productID)
	}

	l, err := s.store.Load(ctx, customerEmail)
	if err != nil {
		return nil, err
	}
	l.AddItem(Item{
		ProductID:       p.ID.String(),
		Name:            p.Name,
		ShopName:        p.ShopName,
		Category:        p.Category,
		Price:           p.Price,
		CarbonFootprint: p.CarbonFootprint,
		EcoRating:       p.EcoRating,
	})
	if err := s.store.Save(ctx, customerEmail, l); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"customer": customerEmail, "product": productID}).
		Debug("added product to cart")
	return summarize(l), nil
}

func (s *service) SetQuantity(ctx context.Context, customerEmail, productID string, quantity int) (*Summary, error) {
	l, err := s.store.Load(ctx, customerEmail)
	if err != nil {
		return nil, err
	}
	l.SetQuantity(productID, quantity)
	if err := s.store.Save(ctx, customerEmail, l); err != nil {
		return nil, err
	}
	return summarize(l), nil
}

func (s *service) RemoveProduct(ctx context.Context, customerEmail, productID string) (*Summary, error) {
	l, err := s.store.Load(ctx, customerEmail)
	if err != nil {
		return nil, err
	}
	l.RemoveItem(productID)
	if err := s.store.Save(ctx, customerEmail, l); err != nil {
		return nil, err
	}
	return summarize(l), nil
}

func (s *service) Clear(ctx context.Context, customerEmail string) error {
	return s.store.Clear(ctx, customerEmail)
}

func (s *service) Ledger(ctx context.Context, customerEmail string) (*Ledger, error) {
	return s.store.Load(ctx, customerEmail)
}

func summarize(l *Ledger) *Summary {
	return &Summary{
		Items:       l.Items(),
		LineCount:   l.LineCount(),
		Total:       l.Total(),
		CarbonSaved: l.CarbonSaved(),
	}
}
