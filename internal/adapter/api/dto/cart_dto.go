package dto

import (
	"time"

	"github.com/stellarsoil/marketplace/internal/domain/cart"
)

// CartItemRequest adds or updates one product line in the cart
type CartItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// CartItemResponse is one product line of a cart
type CartItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

// CartResponse is the public view of a cart
type CartResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Items     []CartItemResponse `json:"items"`
	Total     float64            `json:"total"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ToCartResponse converts a domain cart to its response DTO
func ToCartResponse(c *cart.Cart) CartResponse {
	items := make([]CartItemResponse, len(c.Items))
	for i, it := range c.Items {
		items[i] = CartItemResponse{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price}
	}
	return CartResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Items:     items,
		Total:     c.Total(),
		UpdatedAt: c.UpdatedAt,
	}
}
