package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest, sellerEmail, shopName string) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)

	// Browse returns active products filtered and ordered for the storefront.
	Browse(ctx context.Context, q BrowseQuery) ([]*Product, error)

	ListSellerProducts(ctx context.Context, sellerEmail string) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, req CreateProductRequest, sellerEmail string) (*Product, error)
	DeactivateProduct(ctx context.Context, id string, sellerEmail string) error

	// AdjustInventory changes stock by delta. Used by order placement and cancellation.
	AdjustInventory(ctx context.Context, id string, delta int) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest, sellerEmail, shopName string) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	p := &Product{
		ID:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Category:        req.Category,
		Materials:       req.Materials,
		Manufacturing:   req.Manufacturing,
		ShippingMethod:  req.ShippingMethod,
		EcoTags:         req.EcoTags,
		CarbonFootprint: req.CarbonFootprint,
		EcoRating:       req.EcoRating,
		SellerEmail:     sellerEmail,
		ShopName:        shopName,
		Inventory:       req.Inventory,
		ImageURLs:       req.ImageURLs,
		IsActive:        true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Browse(ctx context.Context, q BrowseQuery) ([]*Product, error) {
	products, err := s.repo.ListActive(ctx, q.Category)
	if err != nil {
		return nil, err
	}
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		filtered := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), term) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	sortProducts(products, q.SortBy)
	return products, nil
}

func (s *service) ListSellerProducts(ctx context.Context, sellerEmail string) ([]*Product, error) {
	return s.repo.ListBySeller(ctx, sellerEmail, true)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req CreateProductRequest, sellerEmail string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}
	if p.SellerEmail != sellerEmail {
		return nil, fmt.Errorf("product %s does not belong to this seller", id)
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Category = req.Category
	p.Materials = req.Materials
	p.Manufacturing = req.Manufacturing
	p.ShippingMethod = req.ShippingMethod
	p.EcoTags = req.EcoTags
	p.CarbonFootprint = req.CarbonFootprint
	p.EcoRating = req.EcoRating
	p.Inventory = req.Inventory
	p.ImageURLs = req.ImageURLs
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeactivateProduct(ctx context.Context, id string, sellerEmail string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("product not found: %w", err)
	}
	if p.SellerEmail != sellerEmail {
		return fmt.Errorf("product %s does not belong to this seller", id)
	}
	return s.repo.SetActive(ctx, id, false)
}

func (s *service) AdjustInventory(ctx context.Context, id string, delta int) error {
	return s.repo.AdjustInventory(ctx, id, delta)
}

// ── sorting ──────────────────────────────────────────────────────────────────

// ecoGradeRank orders letter grades best-first. Unknown grades sort last.
func ecoGradeRank(grade string) int {
	switch strings.ToUpper(strings.TrimSpace(grade)) {
	case "A+":
		return 0
	case "A":
		return 1
	case "B":
		return 2
	case "C":
		return 3
	case "D":
		return 4
	default:
		return 5
	}
}

func sortProducts(products []*Product, sortBy string) {
	switch sortBy {
	case SortPrice:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortCarbon:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CarbonFootprint < products[j].CarbonFootprint
		})
	default: // SortEcoRating
		sort.SliceStable(products, func(i, j int) bool {
			return ecoGradeRank(products[i].EcoRating) < ecoGradeRank(products[j].EcoRating)
		})
	}
}
