package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stellarsoil/marketplace/internal/domain/cart"
)

// CartRepository implements cart.Repository over postgres. The user_id column
// is unique, so Save is an upsert keyed on the owner.
type CartRepository struct {
	db *pgxpool.Pool
}

// NewCartRepository creates a CartRepository
func NewCartRepository(db *pgxpool.Pool) cart.Repository {
	return &CartRepository{db: db}
}

// FindByUser implements cart.Repository.FindByUser
func (r *CartRepository) FindByUser(ctx context.Context, userID string) (*cart.Cart, error) {
	var (
		c     cart.Cart
		items []byte
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, items, created_at, updated_at FROM carts WHERE user_id = $1`,
		userID).Scan(&c.ID, &c.UserID, &items, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrNotFound
		}
		return nil, fmt.Errorf("finding cart: %w", err)
	}
	if err := json.Unmarshal(items, &c.Items); err != nil {
		return nil, fmt.Errorf("decoding cart items: %w", err)
	}
	return &c, nil
}

// Save implements cart.Repository.Save
func (r *CartRepository) Save(ctx context.Context, c *cart.Cart) error {
	items, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("encoding cart items: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO carts (id, user_id, items, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id)
		 DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at`,
		c.ID, c.UserID, items, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

// Delete implements cart.Repository.Delete
func (r *CartRepository) Delete(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("deleting cart: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cart.ErrNotFound
	}
	return nil
}
