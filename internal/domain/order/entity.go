package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBuyer    = errors.New("order buyer cannot be empty")
	ErrNoItems       = errors.New("order must contain at least one item")
	ErrInvalidItem   = errors.New("order item must have positive quantity and price")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrBadTransition = errors.New("invalid order status transition")
)

// Status tracks an order through its lifecycle
type Status string

const (
	StatusPlaced     Status = "placed"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusReady      Status = "ready"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// statusFlow lists the allowed transitions out of each status
var statusFlow = map[Status][]Status{
	StatusPlaced:     {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusReady, StatusCancelled},
	StatusReady:      {StatusDelivered},
}

// Item is one product line within an order. UnitPrice is frozen at order time.
type Item struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
}

// StatusChange records one step of the order's history
type StatusChange struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Order is a buyer's purchase from a single farm
type Order struct {
	ID          string         `json:"id"`
	BuyerID     string         `json:"buyer_id"`
	FarmID      string         `json:"farm_id"`
	Items       []Item         `json:"items"`
	TotalAmount float64        `json:"total_amount"`
	Status      Status         `json:"status"`
	History     []StatusChange `json:"history"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewOrder creates an order in the placed state
func NewOrder(buyerID, farmID string, items []Item) (*Order, error) {
	if buyerID == "" {
		return nil, ErrEmptyBuyer
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	total := 0.0
	for _, it := range items {
		if it.Quantity <= 0 || it.UnitPrice <= 0 {
			return nil, ErrInvalidItem
		}
		total += it.Quantity * it.UnitPrice
	}

	now := time.Now()
	return &Order{
		ID:          uuid.New().String(),
		BuyerID:     buyerID,
		FarmID:      farmID,
		Items:       items,
		TotalAmount: total,
		Status:      StatusPlaced,
		History:     []StatusChange{{Status: StatusPlaced, Timestamp: now}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Transition moves the order to next, enforcing the lifecycle
func (o *Order) Transition(next Status) error {
	for _, allowed := range statusFlow[o.Status] {
		if allowed == next {
			now := time.Now()
			o.Status = next
			o.History = append(o.History, StatusChange{Status: next, Timestamp: now})
			o.UpdatedAt = now
			return nil
		}
	}
	return ErrBadTransition
}

// ParseStatus validates a wire status value
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPlaced, StatusConfirmed, StatusProcessing, StatusReady, StatusDelivered, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}
