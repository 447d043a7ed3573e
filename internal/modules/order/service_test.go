package order

import (
	"context"
	"fmt"
	"testing"

	"github.com/ecobazaar/ecobazaar-backend/internal/modules/cart"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/catalog"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/seller"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeRepo struct {
	orders    map[string]*Order
	createErr error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{orders: map[string]*Order{}} }

func (r *fakeRepo) CreateOrder(ctx context.Context, o *Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.orders[o.ID.String()] = o
	return nil
}

func (r *fakeRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("no rows")
	}
	return o, nil
}

func (r *fakeRepo) ListByCustomer(ctx context.Context, customerEmail string) ([]*Order, error) {
	var out []*Order
	for _, o := range r.orders {
		if o.CustomerEmail == customerEmail {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBySeller(ctx context.Context, sellerEmail string) ([]*Order, error) {
	var out []*Order
	for _, o := range r.orders {
		if orderHasSeller(o, sellerEmail) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]*Order, error) {
	var out []*Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeRepo) CustomerAggregates(ctx context.Context, customerEmail string) (*CustomerSummary, error) {
	s := &CustomerSummary{CustomerEmail: customerEmail}
	for _, o := range r.orders {
		if o.CustomerEmail != customerEmail || o.Status == StatusCancelled {
			continue
		}
		s.Orders++
		s.TotalSpent += o.TotalAmount
		s.CarbonSaved += o.CarbonSaved
	}
	return s, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id string, status OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("no rows")
	}
	o.Status = status
	return nil
}

type fakeCatalog struct {
	products map[string]*catalog.Product
}

func newFakeCatalog(products ...*catalog.Product) *fakeCatalog {
	m := map[string]*catalog.Product{}
	for _, p := range products {
		m[p.ID.String()] = p
	}
	return &fakeCatalog{products: m}
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("no rows")
	}
	return p, nil
}

func (f *fakeCatalog) AdjustInventory(ctx context.Context, id string, delta int) error {
	p, ok := f.products[id]
	if !ok {
		return fmt.Errorf("no rows")
	}
	p.Inventory += delta
	if p.Inventory < 0 {
		p.Inventory = 0
	}
	return nil
}

func (f *fakeCatalog) CreateProduct(ctx context.Context, req catalog.CreateProductRequest, sellerEmail, shopName string) (*catalog.Product, error) {
	return nil, nil
}
func (f *fakeCatalog) Browse(ctx context.Context, q catalog.BrowseQuery) ([]*catalog.Product, error) {
	return nil, nil
}
func (f *fakeCatalog) ListSellerProducts(ctx context.Context, sellerEmail string) ([]*catalog.Product, error) {
	return nil, nil
}
func (f *fakeCatalog) UpdateProduct(ctx context.Context, id string, req catalog.CreateProductRequest, sellerEmail string) (*catalog.Product, error) {
	return nil, nil
}
func (f *fakeCatalog) DeactivateProduct(ctx context.Context, id string, sellerEmail string) error {
	return nil
}

type recordedSale struct {
	amount float64
	units  int
}

type fakeStats struct {
	sales map[string]recordedSale
}

func newFakeStats() *fakeStats { return &fakeStats{sales: map[string]recordedSale{}} }

func (f *fakeStats) StatsFor(ctx context.Context, sellerEmail string) (*seller.Stats, error) {
	return &seller.Stats{SellerEmail: sellerEmail}, nil
}

func (f *fakeStats) RecordSale(ctx context.Context, sellerEmail string, amount float64, units int) error {
	prev := f.sales[sellerEmail]
	f.sales[sellerEmail] = recordedSale{amount: prev.amount + amount, units: prev.units + units}
	return nil
}

func (f *fakeStats) SettlePayouts(ctx context.Context, sellerEmail string) error { return nil }

func (f *fakeStats) Profile(ctx context.Context, sellerEmail string) (*seller.Profile, error) {
	return nil, nil
}
func (f *fakeStats) CompleteProfile(ctx context.Context, sellerEmail string, req seller.ProfileRequest) (*seller.Profile, error) {
	return nil, nil
}
func (f *fakeStats) UpdateProfile(ctx context.Context, sellerEmail string, req seller.ProfileRequest) (*seller.Profile, error) {
	return nil, nil
}

// ── fixtures ──────────────────────────────────────────────────────────────────

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestService(t *testing.T, products ...*catalog.Product) (Service, *fakeRepo, *fakeCatalog, *fakeStats, cart.Service) {
	t.Helper()
	repo := newFakeRepo()
	cat := newFakeCatalog(products...)
	stats := newFakeStats()
	carts := cart.NewService(cart.NewMemoryStore(), cat, quietLogger())
	return NewService(repo, carts, cat, stats, quietLogger()), repo, cat, stats, carts
}

func testProduct(name string, price, carbon float64, inventory int, sellerEmail string) *catalog.Product {
	return &catalog.Product{
		ID:              uuid.New(),
		Name:            name,
		Price:           price,
		CarbonFootprint: carbon,
		Inventory:       inventory,
		SellerEmail:     sellerEmail,
		ShopName:        "Green Shop",
		IsActive:        true,
	}
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestPlaceOrderComputesTotalsAndDecrementsStock(t *testing.T) {
	ctx := context.Background()
	shirt := testProduct("Organic Cotton T-Shirt", 29.99, 1.2, 5, "seller@example.com")
	brush := testProduct("Bamboo Toothbrush", 12.99, 0.8, 5, "seller@example.com")
	svc, _, cat, _, carts := newTestService(t, shirt, brush)

	_, err := carts.AddProduct(ctx, "buyer@example.com", shirt.ID.String())
	require.NoError(t, err)
	_, err = carts.AddProduct(ctx, "buyer@example.com", brush.ID.String())
	require.NoError(t, err)
	_, err = carts.SetQuantity(ctx, "buyer@example.com", brush.ID.String(), 2)
	require.NoError(t, err)

	o, err := svc.PlaceOrder(ctx, "buyer@example.com", PlaceOrderRequest{ShippingAddress: "12 Elm St"})
	require.NoError(t, err)

	assert.InDelta(t, 55.97, o.TotalAmount, 1e-9)
	assert.InDelta(t, 2.8, o.CarbonSaved, 1e-9)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, StatusPending, o.Status)
	assert.Regexp(t, `^EB[0-9A-F]{8}$`, o.TrackingNumber)

	assert.Equal(t, 4, cat.products[shirt.ID.String()].Inventory)
	assert.Equal(t, 3, cat.products[brush.ID.String()].Inventory)

	// cart is cleared after checkout
	summary, err := carts.View(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.LineCount)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	_, err := svc.PlaceOrder(context.Background(), "buyer@example.com", PlaceOrderRequest{})
	assert.ErrorContains(t, err, "cart is empty")
}

func TestPlaceOrderInsufficientInventory(t *testing.T) {
	ctx := context.Background()
	p := testProduct("Solar Charger", 49.99, 2.1, 1, "seller@example.com")
	svc, _, _, _, carts := newTestService(t, p)

	_, err := carts.AddProduct(ctx, "buyer@example.com", p.ID.String())
	require.NoError(t, err)
	_, err = carts.SetQuantity(ctx, "buyer@example.com", p.ID.String(), 3)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, "buyer@example.com", PlaceOrderRequest{})
	assert.ErrorContains(t, err, "insufficient inventory")
}

func TestPlaceOrderRestoresStockWhenPersistFails(t *testing.T) {
	ctx := context.Background()
	shirt := testProduct("Organic Cotton T-Shirt", 29.99, 1.2, 5, "seller@example.com")
	brush := testProduct("Bamboo Toothbrush", 12.99, 0.8, 5, "seller@example.com")
	svc, repo, cat, _, carts := newTestService(t, shirt, brush)
	repo.createErr = fmt.Errorf("connection refused")

	_, err := carts.AddProduct(ctx, "buyer@example.com", shirt.ID.String())
	require.NoError(t, err)
	_, err = carts.AddProduct(ctx, "buyer@example.com", brush.ID.String())
	require.NoError(t, err)
	_, err = carts.SetQuantity(ctx, "buyer@example.com", brush.ID.String(), 2)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, "buyer@example.com", PlaceOrderRequest{})
	require.ErrorContains(t, err, "failed to persist order")

	// reserved quantities are handed back, nothing recorded, cart intact
	assert.Equal(t, 5, cat.products[shirt.ID.String()].Inventory)
	assert.Equal(t, 5, cat.products[brush.ID.String()].Inventory)
	assert.Empty(t, repo.orders)

	summary, err := carts.View(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.LineCount)
}

func TestCustomerSummaryExcludesCancelled(t *testing.T) {
	ctx := context.Background()
	shirt := testProduct("Organic Cotton T-Shirt", 29.99, 1.2, 10, "seller@example.com")
	svc, _, _, _, carts := newTestService(t, shirt)

	_, err := carts.AddProduct(ctx, "buyer@example.com", shirt.ID.String())
	require.NoError(t, err)
	kept, err := svc.PlaceOrder(ctx, "buyer@example.com", PlaceOrderRequest{})
	require.NoError(t, err)

	_, err = carts.AddProduct(ctx, "buyer@example.com", shirt.ID.String())
	require.NoError(t, err)
	dropped, err := svc.PlaceOrder(ctx, "buyer@example.com", PlaceOrderRequest{})
	require.NoError(t, err)
	require.NoError(t, svc.CancelOrder(ctx, dropped.ID.String(), "buyer@example.com"))

	summary, err := svc.CustomerSummary(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Orders)
	assert.InDelta(t, kept.TotalAmount, summary.TotalSpent, 1e-9)
	assert.InDelta(t, kept.CarbonSaved, summary.CarbonSaved, 1e-9)
}

func TestListAllOrders(t *testing.T) {
	ctx := context.Background()
	shirt := testProduct("Organic Cotton T-Shirt", 29.99, 1.2, 10, "seller@example.com")
	svc, _, _, _, carts := newTestService(t, shirt)

	for _, buyer := range []string{"a@example.com", "b@example.com"} {
		_, err := carts.AddProduct(ctx, buyer, shirt.ID.String())
		require.NoError(t, err)
		_, err = svc.PlaceOrder(ctx, buyer, PlaceOrderRequest{})
		require.NoError(t, err)
	}

	all, err := svc.ListAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCancelOrderRestoresInventory(t *testing.T) {
	ctx := context.Background()
	p := testProduct("Hemp Bag", 24.99, 3.2, 2, "seller@example.com")
	svc, _, cat, _, carts := newTestService(t, p)

	_, err := carts.AddProduct(ctx, "buyer@example.com", p.ID.String())
	require.NoError(t, err)
	o, err := svc.PlaceOrder(ctx, "buyer@example.com", PlaceOrderRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, cat.products[p.ID.String()].Inventory)

	require.NoError(t, svc.CancelOrder(ctx, o.ID.String(), "buyer@example.com"))
	assert.Equal(t, 2, cat.products[p.ID.String()].Inventory)

	got, err := svc.GetOrder(ctx, o.ID.String(), "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
}

func TestCancelOrderRequiresPendingAndOwnership(t *testing.T) {
	ctx := context.Background()
	p := testProduct("Notebook", 8.99, 0.5, 5, "seller@example.com")
	svc, repo, _, _, carts := newTestService(t, p)

	_, err := carts.AddProduct(ctx, "buyer@example.com", p.ID.String())
	require.NoError(t, err)
	o, err := svc.PlaceOrder(ctx, "buyer@example.com", PlaceOrderRequest{})
	require.NoError(t, err)

	err = svc.CancelOrder(ctx, o.ID.String(), "other@example.com")
	assert.ErrorContains(t, err, "not found")

	repo.orders[o.ID.String()].Status = StatusShipped
	err = svc.CancelOrder(ctx, o.ID.String(), "buyer@example.com")
	assert.ErrorContains(t, err, "only PENDING")
}

func TestUpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()
	p := testProduct("Soap", 6.99, 0.3, 5, "seller@example.com")
	svc, _, _, stats, carts := newTestService(t, p)

	_, err := carts.AddProduct(ctx, "buyer@example.com", p.ID.String())
	require.NoError(t, err)
	_, err = carts.SetQuantity(ctx, "buyer@example.com", p.ID.String(), 2)
	require.NoError(t, err)
	o, err := svc.PlaceOrder(ctx, "buyer@example.com", PlaceOrderRequest{})
	require.NoError(t, err)

	// skipping a step is rejected
	_, err = svc.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: "shipped"}, "seller@example.com")
	assert.ErrorContains(t, err, "cannot transition")

	// wrong seller is rejected
	_, err = svc.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: "confirmed"}, "stranger@example.com")
	assert.ErrorContains(t, err, "no items from this seller")

	for _, status := range []string{"confirmed", "processing", "shipped", "delivered"} {
		_, err = svc.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: status}, "seller@example.com")
		require.NoError(t, err, "transition to %s", status)
	}

	// delivery credits the seller with the order share
	sale := stats.sales["seller@example.com"]
	assert.InDelta(t, 13.98, sale.amount, 1e-9)
	assert.Equal(t, 2, sale.units)
}

func TestTrackOrder(t *testing.T) {
	ctx := context.Background()
	p := testProduct("Notebook", 8.99, 0.5, 5, "seller@example.com")
	svc, _, _, _, carts := newTestService(t, p)

	_, err := carts.AddProduct(ctx, "buyer@example.com", p.ID.String())
	require.NoError(t, err)
	o, err := svc.PlaceOrder(ctx, "buyer@example.com", PlaceOrderRequest{})
	require.NoError(t, err)

	tl, err := svc.TrackOrder(ctx, o.ID.String(), "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, tl.CurrentStep)
	assert.False(t, tl.Cancelled)
}
