package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stellarsoil/marketplace/internal/domain/order"
)

// OrderRepository implements order.Repository over postgres. Items and the
// status history are stored as JSONB since they are only ever read back with
// their order.
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository creates an OrderRepository
func NewOrderRepository(db *pgxpool.Pool) order.Repository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, buyer_id, farm_id, items, total_amount, status, history, created_at, updated_at`

// Create implements order.Repository.Create
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items, history, err := marshalOrder(o)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO orders (`+orderColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		o.ID, o.BuyerID, o.FarmID, items, o.TotalAmount, o.Status, history,
		o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating order: %w", err)
	}
	return nil
}

// FindByID implements order.Repository.FindByID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("finding order: %w", err)
	}
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}
	return orders[0], nil
}

// FindByBuyer implements order.Repository.FindByBuyer
func (r *OrderRepository) FindByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE buyer_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		buyerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing buyer orders: %w", err)
	}
	return scanOrders(rows)
}

// FindByFarm implements order.Repository.FindByFarm
func (r *OrderRepository) FindByFarm(ctx context.Context, farmID string, limit, offset int) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE farm_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		farmID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing farm orders: %w", err)
	}
	return scanOrders(rows)
}

// Update implements order.Repository.Update
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	items, history, err := marshalOrder(o)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET items = $2, total_amount = $3, status = $4, history = $5,
		        updated_at = $6
		 WHERE id = $1`,
		o.ID, items, o.TotalAmount, o.Status, history, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func marshalOrder(o *order.Order) (items, history []byte, err error) {
	if items, err = json.Marshal(o.Items); err != nil {
		return nil, nil, fmt.Errorf("encoding order items: %w", err)
	}
	if history, err = json.Marshal(o.History); err != nil {
		return nil, nil, fmt.Errorf("encoding order history: %w", err)
	}
	return items, history, nil
}

func scanOrders(rows pgx.Rows) ([]*order.Order, error) {
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		var (
			o              order.Order
			items, history []byte
		)
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.FarmID, &items, &o.TotalAmount,
			&o.Status, &history, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("decoding order items: %w", err)
		}
		if err := json.Unmarshal(history, &o.History); err != nil {
			return nil, fmt.Errorf("decoding order history: %w", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
