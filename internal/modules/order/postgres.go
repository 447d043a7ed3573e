package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const orderColumns = `id, customer_email, tracking_number, status, total_amount,
	carbon_saved, shipping_address, payment_method, order_date, delivery_date`

// CreateOrder inserts the order and all its items inside a single transaction.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders
		  (id, customer_email, tracking_number, status, total_amount,
		   carbon_saved, shipping_address, payment_method, order_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		o.ID, o.CustomerEmail, o.TrackingNumber, o.Status, o.TotalAmount,
		o.CarbonSaved, o.ShippingAddress, o.PaymentMethod, o.OrderDate)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items
			  (id, order_id, product_id, product_name, shop_name, seller_email,
			   category, quantity, price, carbon_footprint)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			item.ID, o.ID, item.ProductID, item.ProductName, item.ShopName,
			item.SellerEmail, item.Category, item.Quantity, item.Price, item.CarbonFootprint)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	o, err := r.scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, uid))
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID.String())
	return o, err
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerEmail string) ([]*Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_email=$1 ORDER BY order_date DESC`,
		customerEmail)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]*Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY order_date DESC`)
}

func (r *postgresRepo) CustomerAggregates(ctx context.Context, customerEmail string) (*CustomerSummary, error) {
	s := &CustomerSummary{CustomerEmail: customerEmail}
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0), COALESCE(SUM(carbon_saved), 0)
		FROM orders
		WHERE customer_email=$1 AND status <> $2`,
		customerEmail, StatusCancelled).Scan(&s.Orders, &s.TotalSpent, &s.CarbonSaved)
	if err != nil {
		return nil, fmt.Errorf("customer aggregates: %w", err)
	}
	return s, nil
}

func (r *postgresRepo) ListBySeller(ctx context.Context, sellerEmail string) ([]*Order, error) {
	return r.queryOrders(ctx, `
		SELECT DISTINCT o.id, o.customer_email, o.tracking_number, o.status, o.total_amount,
		       o.carbon_saved, o.shipping_address, o.payment_method, o.order_date, o.delivery_date
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE i.seller_email=$1
		ORDER BY o.order_date DESC`, sellerEmail)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status OrderStatus) error {
	if status == StatusDelivered {
		_, err := r.db.ExecContext(ctx,
			`UPDATE orders SET status=$1, delivery_date=$2 WHERE id=$3`,
			status, time.Now(), id)
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status=$1 WHERE id=$2`, status, id)
	return err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (r *postgresRepo) scanOrder(row *sql.Row) (*Order, error) {
	o := &Order{}
	var deliveryDate sql.NullTime
	err := row.Scan(
		&o.ID, &o.CustomerEmail, &o.TrackingNumber, &o.Status, &o.TotalAmount,
		&o.CarbonSaved, &o.ShippingAddress, &o.PaymentMethod, &o.OrderDate, &deliveryDate)
	if err != nil {
		return nil, err
	}
	if deliveryDate.Valid {
		o.DeliveryDate = &deliveryDate.Time
	}
	return o, nil
}

func (r *postgresRepo) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		var deliveryDate sql.NullTime
		if err := rows.Scan(
			&o.ID, &o.CustomerEmail, &o.TrackingNumber, &o.Status, &o.TotalAmount,
			&o.CarbonSaved, &o.ShippingAddress, &o.PaymentMethod, &o.OrderDate, &deliveryDate); err != nil {
			return nil, err
		}
		if deliveryDate.Valid {
			o.DeliveryDate = &deliveryDate.Time
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Items, err = r.listItems(ctx, o.ID.String()); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *postgresRepo) listItems(ctx context.Context, orderID string) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, shop_name, seller_email,
		       category, quantity, price, carbon_footprint
		FROM order_items WHERE order_id=$1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*OrderItem
	for rows.Next() {
		item := &OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.ShopName, &item.SellerEmail, &item.Category,
			&item.Quantity, &item.Price, &item.CarbonFootprint); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
