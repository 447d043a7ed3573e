package admin

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CarbonReport(ctx context.Context) (*CarbonReport, error) {
	report := &CarbonReport{}

	err := r.db.QueryRowContext(ctx, `
		SELECT
		  (SELECT COUNT(*) FROM users WHERE role='seller'),
		  (SELECT COUNT(*) FROM users WHERE role='customer'),
		  (SELECT COUNT(*) FROM products WHERE is_active=true),
		  COALESCE((SELECT SUM(carbon_footprint) FROM products WHERE is_active=true), 0)`).
		Scan(&report.TotalSellers, &report.TotalCustomers, &report.TotalProducts, &report.TotalCarbon)
	if err != nil {
		return nil, fmt.Errorf("platform totals: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT p.seller_email,
		       COALESCE(MAX(p.shop_name), ''),
		       COUNT(*),
		       COALESCE(SUM(p.carbon_footprint), 0),
		       COALESCE(MAX(s.total_revenue), 0)
		FROM products p
		LEFT JOIN seller_stats s ON s.seller_email = p.seller_email
		WHERE p.is_active=true
		GROUP BY p.seller_email
		ORDER BY SUM(p.carbon_footprint) DESC`)
	if err != nil {
		return nil, fmt.Errorf("seller emissions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e := SellerEmission{}
		if err := rows.Scan(&e.SellerEmail, &e.ShopName, &e.ProductCount, &e.TotalCarbon, &e.TotalRevenue); err != nil {
			return nil, err
		}
		report.Sellers = append(report.Sellers, e)
	}
	return report, rows.Err()
}

func (r *postgresRepo) ListCustomers(ctx context.Context) ([]*CustomerOverview, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.email, u.name,
		       COUNT(o.id),
		       COALESCE(SUM(o.total_amount), 0),
		       COALESCE(SUM(o.carbon_saved), 0)
		FROM users u
		LEFT JOIN orders o ON o.customer_email = u.email AND o.status != 'CANCELLED'
		WHERE u.role='customer'
		GROUP BY u.id, u.email, u.name
		ORDER BY u.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*CustomerOverview
	for rows.Next() {
		c := &CustomerOverview{}
		if err := rows.Scan(&c.ID, &c.Email, &c.Name, &c.Orders, &c.TotalSpent, &c.CarbonSaved); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
