package product

import "context"

// Repository defines persistence operations for products
type Repository interface {
	// Create stores a new product listing
	Create(ctx context.Context, p *Product) error

	// FindByID fetches a product by id
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindActiveByName finds the best active, in-stock match for a produce
	// name (cheapest first)
	FindActiveByName(ctx context.Context, name string) (*Product, error)

	// FindByFarmAndName fetches a farm's active listing for a produce name
	FindByFarmAndName(ctx context.Context, farmID, name string) (*Product, error)

	// FindByFarm lists a farm's products
	FindByFarm(ctx context.Context, farmID string) ([]*Product, error)

	// Search lists active, in-stock products matching name (all when empty)
	Search(ctx context.Context, name string, limit int) ([]*Product, error)

	// Update persists changes to a product
	Update(ctx context.Context, p *Product) error

	// Delete deactivates a product listing
	Delete(ctx context.Context, id string) error

	// DecrementStock atomically checks and decrements stock, returning
	// ErrInsufficient when fewer than qty units remain. Never a
	// read-then-write pair.
	DecrementStock(ctx context.Context, id string, qty float64) error

	// RestoreStock adds qty back, compensating a failed order write
	RestoreStock(ctx context.Context, id string, qty float64) error
}
