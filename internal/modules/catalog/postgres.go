package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id, name, description, price, category, materials, manufacturing,
	shipping_method, eco_tags, carbon_footprint, eco_rating, rating, seller_email,
	shop_name, inventory, image_urls, is_active, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, description, price, category, materials, manufacturing,
		   shipping_method, eco_tags, carbon_footprint, eco_rating, rating,
		   seller_email, shop_name, inventory, image_urls, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Materials, p.Manufacturing,
		p.ShippingMethod, pq.Array(p.EcoTags), p.CarbonFootprint, p.EcoRating, p.Rating,
		p.SellerEmail, p.ShopName, p.Inventory, pq.Array(p.ImageURLs), p.IsActive)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return r.scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id=$1`, uid))
}

func (r *postgresRepo) ListActive(ctx context.Context, category string) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active=true`
	args := []interface{}{}
	if category != "" && category != "all" {
		query += ` AND category=$1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`
	return r.queryProducts(ctx, query, args...)
}

func (r *postgresRepo) ListBySeller(ctx context.Context, sellerEmail string, activeOnly bool) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE seller_email=$1`
	if activeOnly {
		query += ` AND is_active=true`
	}
	query += ` ORDER BY created_at DESC`
	return r.queryProducts(ctx, query, sellerEmail)
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products SET
		  name=$1, description=$2, price=$3, category=$4, materials=$5,
		  manufacturing=$6, shipping_method=$7, eco_tags=$8, carbon_footprint=$9,
		  eco_rating=$10, inventory=$11, image_urls=$12, updated_at=NOW()
		WHERE id=$13`,
		p.Name, p.Description, p.Price, p.Category, p.Materials,
		p.Manufacturing, p.ShippingMethod, pq.Array(p.EcoTags), p.CarbonFootprint,
		p.EcoRating, p.Inventory, pq.Array(p.ImageURLs), p.ID)
	return err
}

func (r *postgresRepo) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_active=$1, updated_at=NOW() WHERE id=$2`, active, id)
	return err
}

func (r *postgresRepo) AdjustInventory(ctx context.Context, id string, delta int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE products SET inventory=GREATEST(inventory+$1, 0), updated_at=NOW() WHERE id=$2`,
		delta, id)
	return err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (r *postgresRepo) scanProduct(row *sql.Row) (*Product, error) {
	p := &Product{}
	var tags, urls pq.StringArray
	var ecoRating sql.NullString
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Materials,
		&p.Manufacturing, &p.ShippingMethod, &tags, &p.CarbonFootprint, &ecoRating,
		&p.Rating, &p.SellerEmail, &p.ShopName, &p.Inventory, &urls, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.EcoTags = tags
	p.ImageURLs = urls
	p.EcoRating = ecoRating.String
	return p, nil
}

func (r *postgresRepo) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		var tags, urls pq.StringArray
		var ecoRating sql.NullString
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Materials,
			&p.Manufacturing, &p.ShippingMethod, &tags, &p.CarbonFootprint, &ecoRating,
			&p.Rating, &p.SellerEmail, &p.ShopName, &p.Inventory, &urls, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.EcoTags = tags
		p.ImageURLs = urls
		p.EcoRating = ecoRating.String
		products = append(products, p)
	}
	return products, rows.Err()
}
