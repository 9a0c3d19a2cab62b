package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyUser       = errors.New("cart user cannot be empty")
	ErrInvalidQuantity = errors.New("cart item quantity must be positive")
	ErrNotFound        = errors.New("cart not found")
)

// Item is one product line in a cart
type Item struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"` // per-unit price at add time
}

// Cart holds a buyer's selected items prior to checkout, one cart per user
type Cart struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCart creates an empty cart for userID
func NewCart(userID string) (*Cart, error) {
	if userID == "" {
		return nil, ErrEmptyUser
	}
	now := time.Now()
	return &Cart{
		ID:        uuid.New().String(),
		UserID:    userID,
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Merge adds qty of productID, merging with an existing line
func (c *Cart) Merge(productID string, qty, price float64) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	c.Items = append(c.Items, Item{ProductID: productID, Quantity: qty, Price: price})
	c.UpdatedAt = time.Now()
	return nil
}

// Remove drops a product line from the cart
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// Total is the cart's current value
func (c *Cart) Total() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.Quantity * it.Price
	}
	return total
}
