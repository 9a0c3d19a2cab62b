package user

import "context"

// Repository defines persistence operations for users
type Repository interface {
	// Create stores a new user
	Create(ctx context.Context, u *User) error

	// FindByID fetches a user by id
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail fetches a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether an account with this email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update persists changes to an existing user
	Update(ctx context.Context, u *User) error
}
