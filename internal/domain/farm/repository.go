package farm

import "context"

// Repository defines persistence operations for farms
type Repository interface {
	Create(ctx context.Context, f *Farm) error
	FindByID(ctx context.Context, id string) (*Farm, error)
	FindByOwner(ctx context.Context, ownerID string) (*Farm, error)
	Update(ctx context.Context, f *Farm) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*Farm, error)
}
