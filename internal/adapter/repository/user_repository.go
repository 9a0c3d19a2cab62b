package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stellarsoil/marketplace/internal/domain/user"
)

// UserRepository implements user.Repository over postgres
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, role, phone, address, farm_id, active, verified, created_at, updated_at`

// Create implements user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Phone, u.Address,
		u.FarmID, u.Active, u.Verified, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// FindByID implements user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail implements user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email))
}

// ExistsByEmail implements user.Repository.ExistsByEmail
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, strings.ToLower(email)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking user existence: %w", err)
	}
	return exists, nil
}

// Update implements user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET name = $2, phone = $3, address = $4, farm_id = NULLIF($5, ''),
		        active = $6, verified = $7, updated_at = $8
		 WHERE id = $1`,
		u.ID, u.Name, u.Phone, u.Address, u.FarmID, u.Active, u.Verified, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...interface{}) (*user.User, error) {
	var u user.User
	var farmID *string
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Phone,
		&u.Address, &farmID, &u.Active, &u.Verified, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if farmID != nil {
		u.FarmID = *farmID
	}
	return &u, nil
}
