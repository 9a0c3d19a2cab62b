package order

import "context"

// Repository defines persistence operations for orders
type Repository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*Order, error)
	FindByFarm(ctx context.Context, farmID string, limit, offset int) ([]*Order, error)
	Update(ctx context.Context, o *Order) error
}
