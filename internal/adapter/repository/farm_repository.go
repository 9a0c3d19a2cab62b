package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stellarsoil/marketplace/internal/domain/farm"
)

// FarmRepository implements farm.Repository over postgres
type FarmRepository struct {
	db *pgxpool.Pool
}

// NewFarmRepository creates a FarmRepository
func NewFarmRepository(db *pgxpool.Pool) farm.Repository {
	return &FarmRepository{db: db}
}

const farmColumns = `id, owner_id, name, description, address, latitude, longitude, created_at, updated_at`

// Create implements farm.Repository.Create
func (r *FarmRepository) Create(ctx context.Context, f *farm.Farm) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO farms (`+farmColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		f.ID, f.OwnerID, f.Name, f.Description, f.Address, f.Latitude, f.Longitude,
		f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating farm: %w", err)
	}
	return nil
}

// FindByID implements farm.Repository.FindByID
func (r *FarmRepository) FindByID(ctx context.Context, id string) (*farm.Farm, error) {
	return r.findOne(ctx, `SELECT `+farmColumns+` FROM farms WHERE id = $1`, id)
}

// FindByOwner implements farm.Repository.FindByOwner
func (r *FarmRepository) FindByOwner(ctx context.Context, ownerID string) (*farm.Farm, error) {
	return r.findOne(ctx, `SELECT `+farmColumns+` FROM farms WHERE owner_id = $1`, ownerID)
}

// Update implements farm.Repository.Update
func (r *FarmRepository) Update(ctx context.Context, f *farm.Farm) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE farms SET name = $2, description = $3, address = $4, latitude = $5,
		        longitude = $6, updated_at = $7
		 WHERE id = $1`,
		f.ID, f.Name, f.Description, f.Address, f.Latitude, f.Longitude, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating farm: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFarmNotFound
	}
	return nil
}

// Delete implements farm.Repository.Delete
func (r *FarmRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM farms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting farm: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFarmNotFound
	}
	return nil
}

// List implements farm.Repository.List
func (r *FarmRepository) List(ctx context.Context, limit, offset int) ([]*farm.Farm, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+farmColumns+` FROM farms ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing farms: %w", err)
	}
	defer rows.Close()

	var farms []*farm.Farm
	for rows.Next() {
		var f farm.Farm
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.Description, &f.Address,
			&f.Latitude, &f.Longitude, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning farm: %w", err)
		}
		farms = append(farms, &f)
	}
	return farms, rows.Err()
}

func (r *FarmRepository) findOne(ctx context.Context, query string, args ...interface{}) (*farm.Farm, error) {
	var f farm.Farm
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&f.ID, &f.OwnerID, &f.Name, &f.Description, &f.Address,
		&f.Latitude, &f.Longitude, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFarmNotFound
		}
		return nil, fmt.Errorf("finding farm: %w", err)
	}
	return &f, nil
}
