package dto

import (
	"time"

	"github.com/stellarsoil/marketplace/internal/domain/order"
)

// OrderItemRequest is one product line in an order request
type OrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// OrderRequest carries the data to place an order
type OrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderStatusRequest carries a lifecycle transition
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse is one product line of an order
type OrderItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
}

// OrderStatusChangeResponse is one step of the order history
type OrderStatusChangeResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderResponse is the public view of an order
type OrderResponse struct {
	ID          string                      `json:"id"`
	BuyerID     string                      `json:"buyer_id"`
	FarmID      string                      `json:"farm_id"`
	Items       []OrderItemResponse         `json:"items"`
	TotalAmount float64                     `json:"total_amount"`
	Status      string                      `json:"status"`
	History     []OrderStatusChangeResponse `json:"history"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// OrderListResponse wraps a list of orders
type OrderListResponse struct {
	Data  []OrderResponse `json:"data"`
	Count int             `json:"count"`
}

// ToOrderResponse converts a domain order to its response DTO
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
		}
	}
	history := make([]OrderStatusChangeResponse, len(o.History))
	for i, h := range o.History {
		history[i] = OrderStatusChangeResponse{Status: string(h.Status), Timestamp: h.Timestamp}
	}
	return OrderResponse{
		ID:          o.ID,
		BuyerID:     o.BuyerID,
		FarmID:      o.FarmID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		History:     history,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToOrderListResponse converts a slice of domain orders
func ToOrderListResponse(orders []*order.Order) OrderListResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = ToOrderResponse(o)
	}
	return OrderListResponse{Data: out, Count: len(out)}
}
