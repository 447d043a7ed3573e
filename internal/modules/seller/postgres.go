package seller

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) GetBySeller(ctx context.Context, sellerEmail string) (*Stats, error) {
	s := &Stats{}
	err := r.db.QueryRowContext(ctx, `
		SELECT seller_email, total_revenue, pending_payouts, total_sales, completed_orders, updated_at
		FROM seller_stats WHERE seller_email=$1`, sellerEmail).Scan(
		&s.SellerEmail, &s.TotalRevenue, &s.PendingPayouts, &s.TotalSales, &s.CompletedOrders, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &Stats{SellerEmail: sellerEmail}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get seller stats: %w", err)
	}
	return s, nil
}

func (r *postgresRepo) ApplySale(ctx context.Context, sellerEmail string, amount float64, units int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO seller_stats (seller_email, total_revenue, pending_payouts, total_sales, completed_orders, updated_at)
		VALUES ($1, $2, $2, $3, 1, NOW())
		ON CONFLICT (seller_email) DO UPDATE SET
		  total_revenue   = seller_stats.total_revenue + EXCLUDED.total_revenue,
		  pending_payouts = seller_stats.pending_payouts + EXCLUDED.pending_payouts,
		  total_sales     = seller_stats.total_sales + EXCLUDED.total_sales,
		  completed_orders = seller_stats.completed_orders + 1,
		  updated_at      = NOW()`,
		sellerEmail, amount, units)
	if err != nil {
		return fmt.Errorf("apply sale: %w", err)
	}
	return nil
}

func (r *postgresRepo) SettlePayouts(ctx context.Context, sellerEmail string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE seller_stats SET pending_payouts=0, updated_at=NOW() WHERE seller_email=$1`,
		sellerEmail)
	return err
}

func (r *postgresRepo) GetProfile(ctx context.Context, sellerEmail string) (*Profile, error) {
	p := &Profile{}
	err := r.db.QueryRowContext(ctx, `
		SELECT seller_email, name, store_name, product_categories, description,
		       phone_number, address, website, created_at, updated_at
		FROM seller_profiles WHERE seller_email=$1`, sellerEmail).Scan(
		&p.SellerEmail, &p.Name, &p.StoreName, pq.Array(&p.ProductCategories),
		&p.Description, &p.PhoneNumber, &p.Address, &p.Website,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get seller profile: %w", err)
	}
	return p, nil
}

func (r *postgresRepo) SaveProfile(ctx context.Context, p *Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO seller_profiles
		  (seller_email, name, store_name, product_categories, description,
		   phone_number, address, website, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW(),NOW())
		ON CONFLICT (seller_email) DO UPDATE SET
		  name               = EXCLUDED.name,
		  store_name         = EXCLUDED.store_name,
		  product_categories = EXCLUDED.product_categories,
		  description        = EXCLUDED.description,
		  phone_number       = EXCLUDED.phone_number,
		  address            = EXCLUDED.address,
		  website            = EXCLUDED.website,
		  updated_at         = NOW()`,
		p.SellerEmail, p.Name, p.StoreName, pq.Array(p.ProductCategories),
		p.Description, p.PhoneNumber, p.Address, p.Website)
	if err != nil {
		return fmt.Errorf("save seller profile: %w", err)
	}
	return nil
}
