package dto

import (
	"time"

	"github.com/stellarsoil/marketplace/internal/domain/product"
)

// ProductRequest carries the data to create or update a listing
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`
	Stock       float64 `json:"stock" binding:"gte=0"`
	Organic     bool    `json:"organic"`
}

// ProductResponse is the public view of a listing
type ProductResponse struct {
	ID          string    `json:"id"`
	FarmID      string    `json:"farm_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	Stock       float64   `json:"stock"`
	Organic     bool      `json:"organic"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse wraps a page of listings
type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Count int               `json:"count"`
}

// ToProductResponse converts a domain product to its response DTO
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		FarmID:      p.FarmID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Unit:        p.Unit,
		Stock:       p.Stock,
		Organic:     p.Organic,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converts a slice of domain products
func ToProductListResponse(products []*product.Product) ProductListResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return ProductListResponse{Data: out, Count: len(out)}
}
