package cart

import "context"

// Repository defines persistence operations for carts
type Repository interface {
	// FindByUser fetches the user's cart, ErrNotFound when none exists
	FindByUser(ctx context.Context, userID string) (*Cart, error)

	// Save upserts the cart
	Save(ctx context.Context, c *Cart) error

	// Delete removes the user's cart (after checkout)
	Delete(ctx context.Context, userID string) error
}
