package order

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ecobazaar/ecobazaar-backend/internal/modules/cart"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/catalog"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/seller"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service defines the order management business logic.
type Service interface {
	// PlaceOrder checks out the customer's cart: validates stock, decrements
	// inventory, persists the order, and clears the cart.
	PlaceOrder(ctx context.Context, customerEmail string, req PlaceOrderRequest) (*Order, error)

	// GetOrder retrieves one of the customer's own orders.
	GetOrder(ctx context.Context, id, customerEmail string) (*Order, error)

	// ListCustomerOrders returns all orders placed by a customer, newest first.
	ListCustomerOrders(ctx context.Context, customerEmail string) ([]*Order, error)

	// ListSellerOrders returns all orders containing the seller's items.
	ListSellerOrders(ctx context.Context, sellerEmail string) ([]*Order, error)

	// ListAllOrders returns every order on the platform, for the admin view.
	ListAllOrders(ctx context.Context) ([]*Order, error)

	// CustomerSummary totals the customer's non-cancelled purchase history.
	CustomerSummary(ctx context.Context, customerEmail string) (*CustomerSummary, error)

	// UpdateStatus advances an order along the lifecycle on behalf of a seller.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest, sellerEmail string) (*Order, error)

	// CancelOrder cancels the customer's own PENDING order and restores stock.
	CancelOrder(ctx context.Context, id, customerEmail string) error

	// TrackOrder returns the delivery timeline for one of the customer's orders.
	TrackOrder(ctx context.Context, id, customerEmail string) (*Timeline, error)
}

type service struct {
	repo     Repository
	carts    cart.Service
	products catalog.Service
	stats    seller.Service
	log      *logrus.Logger
}

// NewService creates a new order service.
func NewService(repo Repository, carts cart.Service, products catalog.Service, stats seller.Service, log *logrus.Logger) Service {
	return &service{repo: repo, carts: carts, products: products, stats: stats, log: log}
}

// validTransitions defines the allowed status state machine.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func (s *service) PlaceOrder(ctx context.Context, customerEmail string, req PlaceOrderRequest) (*Order, error) {
	ledger, err := s.carts.Ledger(ctx, customerEmail)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if ledger.LineCount() == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	// ── Validate stock and denormalize seller info ────────────────────────────
	var items []*OrderItem
	for _, line := range ledger.Items() {
		p, err := s.products.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found", line.ProductID)
		}
		if !p.IsActive {
			return nil, fmt.Errorf("product %s is no longer available", p.Name)
		}
		if p.Inventory < line.Quantity {
			return nil, fmt.Errorf("insufficient inventory for product %s", p.Name)
		}

		items = append(items, &OrderItem{
			ID:              uuid.New(),
			ProductID:       line.ProductID,
			ProductName:     line.Name,
			ShopName:        p.ShopName,
			SellerEmail:     p.SellerEmail,
			Category:        p.Category,
			Quantity:        line.Quantity,
			Price:           line.Price,
			CarbonFootprint: line.CarbonFootprint,
		})
	}

	// Stock is decremented per item, so a failure partway through (or a failed
	// persist below) must hand the already-reserved quantities back.
	var reserved []*OrderItem
	restoreReserved := func() {
		for _, item := range reserved {
			if err := s.products.AdjustInventory(ctx, item.ProductID, item.Quantity); err != nil {
				s.log.WithError(err).WithField("product", item.ProductID).
					Error("could not restore reserved stock")
			}
		}
	}

	for _, item := range items {
		if err := s.products.AdjustInventory(ctx, item.ProductID, -item.Quantity); err != nil {
			restoreReserved()
			return nil, fmt.Errorf("reserve stock for %s: %w", item.ProductName, err)
		}
		reserved = append(reserved, item)
	}

	o := &Order{
		ID:              uuid.New(),
		CustomerEmail:   customerEmail,
		TrackingNumber:  generateTrackingNumber(),
		Status:          StatusPending,
		Items:           items,
		TotalAmount:     round2(ledger.Total()),
		CarbonSaved:     ledger.CarbonSaved(),
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		OrderDate:       time.Now(),
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		restoreReserved()
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if err := s.carts.Clear(ctx, customerEmail); err != nil {
		s.log.WithError(err).Warn("order placed but cart could not be cleared")
	}

	s.log.WithFields(logrus.Fields{
		"order":    o.ID,
		"customer": customerEmail,
		"total":    o.TotalAmount,
		"carbon":   o.CarbonSaved,
	}).Info("order placed")
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id, customerEmail string) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	if o.CustomerEmail != customerEmail {
		return nil, fmt.Errorf("order not found")
	}
	return o, nil
}

func (s *service) ListCustomerOrders(ctx context.Context, customerEmail string) ([]*Order, error) {
	return s.repo.ListByCustomer(ctx, customerEmail)
}

func (s *service) ListSellerOrders(ctx context.Context, sellerEmail string) ([]*Order, error) {
	return s.repo.ListBySeller(ctx, sellerEmail)
}

func (s *service) ListAllOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) CustomerSummary(ctx context.Context, customerEmail string) (*CustomerSummary, error) {
	return s.repo.CustomerAggregates(ctx, customerEmail)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest, sellerEmail string) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	if !orderHasSeller(o, sellerEmail) {
		return nil, fmt.Errorf("order %s has no items from this seller", id)
	}

	newStatus := OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !transitionAllowed(o.Status, newStatus) {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, newStatus)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	o.Status = newStatus

	if newStatus == StatusDelivered {
		s.creditSellers(ctx, o)
	}
	return o, nil
}

func (s *service) CancelOrder(ctx context.Context, id, customerEmail string) error {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return fmt.Errorf("order not found: %w", err)
	}
	if o.CustomerEmail != customerEmail {
		return fmt.Errorf("order not found")
	}
	if o.Status != StatusPending {
		return fmt.Errorf("only PENDING orders can be cancelled (current: %s)", o.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return err
	}

	// Put the reserved stock back.
	for _, item := range o.Items {
		if err := s.products.AdjustInventory(ctx, item.ProductID, item.Quantity); err != nil {
			s.log.WithError(err).WithField("product", item.ProductID).
				Warn("failed to restore inventory after cancellation")
		}
	}
	return nil
}

func (s *service) TrackOrder(ctx context.Context, id, customerEmail string) (*Timeline, error) {
	o, err := s.GetOrder(ctx, id, customerEmail)
	if err != nil {
		return nil, err
	}
	tl := BuildTimeline(string(o.Status))
	return &tl, nil
}

// creditSellers records each seller's share of a delivered order.
func (s *service) creditSellers(ctx context.Context, o *Order) {
	amounts := map[string]float64{}
	units := map[string]int{}
	for _, item := range o.Items {
		amounts[item.SellerEmail] += item.Price * float64(item.Quantity)
		units[item.SellerEmail] += item.Quantity
	}
	for email, amount := range amounts {
		if err := s.stats.RecordSale(ctx, email, round2(amount), units[email]); err != nil {
			s.log.WithError(err).WithField("seller", email).
				Warn("failed to record seller sale")
		}
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func orderHasSeller(o *Order, sellerEmail string) bool {
	for _, item := range o.Items {
		if item.SellerEmail == sellerEmail {
			return true
		}
	}
	return false
}

func transitionAllowed(from, to OrderStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// generateTrackingNumber creates a customer-facing tracking code: EB + 8 chars.
func generateTrackingNumber() string {
	return "EB" + strings.ToUpper(uuid.New().String()[:8])
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
