package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stellarsoil/marketplace/internal/domain/product"
)

// ProductRepository implements product.Repository over postgres
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository creates a ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

const productColumns = `id, farm_id, name, category, description, price, unit, stock, organic, active, created_at, updated_at`

// Create implements product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.FarmID, p.Name, p.Category, p.Description, p.Price, p.Unit,
		p.Stock, p.Organic, p.Active, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUnavailable(err) {
			return product.ErrStoreOffline
		}
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

// FindByID implements product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// FindActiveByName implements product.Repository.FindActiveByName
func (r *ProductRepository) FindActiveByName(ctx context.Context, name string) (*product.Product, error) {
	return r.findOne(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE name = $1 AND active AND stock > 0
		 ORDER BY price ASC LIMIT 1`, name)
}

// FindByFarmAndName implements product.Repository.FindByFarmAndName
func (r *ProductRepository) FindByFarmAndName(ctx context.Context, farmID, name string) (*product.Product, error) {
	return r.findOne(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE farm_id = $1 AND name = $2 AND active`, farmID, name)
}

// FindByFarm implements product.Repository.FindByFarm
func (r *ProductRepository) FindByFarm(ctx context.Context, farmID string) ([]*product.Product, error) {
	return r.findMany(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE farm_id = $1 AND active ORDER BY name`, farmID)
}

// Search implements product.Repository.Search
func (r *ProductRepository) Search(ctx context.Context, name string, limit int) ([]*product.Product, error) {
	if name == "" {
		return r.findMany(ctx,
			`SELECT `+productColumns+` FROM products
			 WHERE active AND stock > 0 ORDER BY name, price LIMIT $1`, limit)
	}
	return r.findMany(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE active AND stock > 0 AND name LIKE '%' || $1 || '%'
		 ORDER BY name, price LIMIT $2`, name, limit)
}

// Update implements product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET category = $2, description = $3, price = $4, unit = $5,
		        stock = $6, organic = $7, active = $8, updated_at = $9
		 WHERE id = $1`,
		p.ID, p.Category, p.Description, p.Price, p.Unit, p.Stock, p.Organic,
		p.Active, p.UpdatedAt)
	if err != nil {
		if isUnavailable(err) {
			return product.ErrStoreOffline
		}
		return fmt.Errorf("updating product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// Delete implements product.Repository.Delete. Listings are deactivated,
// never removed, so completed orders keep a valid product reference.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivating product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// DecrementStock implements product.Repository.DecrementStock. The check and
// the decrement ride on one conditional UPDATE so concurrent orders can never
// drive stock negative.
func (r *ProductRepository) DecrementStock(ctx context.Context, id string, qty float64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET stock = stock - $1, updated_at = NOW()
		 WHERE id = $2 AND active AND stock >= $1`, qty, id)
	if err != nil {
		if isUnavailable(err) {
			return product.ErrStoreOffline
		}
		return fmt.Errorf("decrementing stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrInsufficient
	}
	return nil
}

// RestoreStock implements product.Repository.RestoreStock
func (r *ProductRepository) RestoreStock(ctx context.Context, id string, qty float64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE products SET stock = stock + $1, updated_at = NOW() WHERE id = $2`, qty, id)
	if err != nil {
		return fmt.Errorf("restoring stock: %w", err)
	}
	return nil
}

func (r *ProductRepository) findOne(ctx context.Context, query string, args ...interface{}) (*product.Product, error) {
	var p product.Product
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.FarmID, &p.Name, &p.Category, &p.Description, &p.Price, &p.Unit,
		&p.Stock, &p.Organic, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		if isUnavailable(err) {
			return nil, product.ErrStoreOffline
		}
		return nil, fmt.Errorf("finding product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		if isUnavailable(err) {
			return nil, product.ErrStoreOffline
		}
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.FarmID, &p.Name, &p.Category, &p.Description,
			&p.Price, &p.Unit, &p.Stock, &p.Organic, &p.Active,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
