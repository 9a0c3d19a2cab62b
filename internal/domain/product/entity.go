package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("product name cannot be empty")
	ErrEmptyFarm    = errors.New("product must belong to a farm")
	ErrInvalidPrice = errors.New("price must be positive")
	ErrInvalidStock = errors.New("stock cannot be negative")
	ErrEmptyUnit    = errors.New("unit cannot be empty")
	ErrNotFound     = errors.New("product not found")
	ErrInsufficient = errors.New("insufficient stock")
	ErrStoreOffline = errors.New("product store unreachable")
)

// Product is a farm listing available for buyers to order
type Product struct {
	ID          string    `json:"id"`
	FarmID      string    `json:"farm_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"` // per unit, in rupees
	Unit        string    `json:"unit"`  // kg, g, l, piece, dozen, bunch
	Stock       float64   `json:"stock"`
	Organic     bool      `json:"organic"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProduct creates a product listing
func NewProduct(farmID, name, category, unit string, price, stock float64) (*Product, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if farmID == "" {
		return nil, ErrEmptyFarm
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if unit == "" {
		return nil, ErrEmptyUnit
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	if category == "" {
		category = "produce"
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		FarmID:    farmID,
		Name:      name,
		Category:  category,
		Unit:      unit,
		Price:     price,
		Stock:     stock,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// InStock reports whether qty can currently be fulfilled
func (p *Product) InStock(qty float64) bool {
	return p.Active && p.Stock >= qty
}
