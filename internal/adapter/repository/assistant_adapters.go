package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellarsoil/marketplace/internal/domain/cart"
	"github.com/stellarsoil/marketplace/internal/domain/farm"
	"github.com/stellarsoil/marketplace/internal/domain/order"
	"github.com/stellarsoil/marketplace/internal/domain/product"
	"github.com/stellarsoil/marketplace/pkg/assistant"
)

// This file adapts the domain repositories to the collaborator interfaces the
// assistant pipeline executes against, translating store errors into the
// pipeline's sentinels so the executor can degrade when postgres is down.

// CatalogAdapter exposes the product repository as an assistant.ProductCatalog
type CatalogAdapter struct {
	products product.Repository
	farms    farm.Repository
}

// NewCatalogAdapter creates a CatalogAdapter
func NewCatalogAdapter(products product.Repository, farms farm.Repository) *CatalogAdapter {
	return &CatalogAdapter{products: products, farms: farms}
}

// FindByName resolves the cheapest in-stock listing for a produce name
func (a *CatalogAdapter) FindByName(ctx context.Context, name string) (*assistant.ProductSummary, error) {
	p, err := a.products.FindActiveByName(ctx, name)
	if err != nil {
		return nil, mapProductErr(err)
	}

	farmName := ""
	if f, err := a.farms.FindByID(ctx, p.FarmID); err == nil {
		farmName = f.Name
	}

	return &assistant.ProductSummary{
		ID:       p.ID,
		FarmID:   p.FarmID,
		Name:     p.Name,
		Price:    p.Price,
		Unit:     p.Unit,
		Stock:    p.Stock,
		FarmName: farmName,
	}, nil
}

// DecrementStock forwards the atomic check-and-decrement
func (a *CatalogAdapter) DecrementStock(ctx context.Context, productID string, quantity float64) error {
	return mapProductErr(a.products.DecrementStock(ctx, productID, quantity))
}

// RestoreStock forwards the compensating increment
func (a *CatalogAdapter) RestoreStock(ctx context.Context, productID string, quantity float64) error {
	return mapProductErr(a.products.RestoreStock(ctx, productID, quantity))
}

// OrderAdapter exposes the order repository as an assistant.OrderPlacer
type OrderAdapter struct {
	orders order.Repository
}

// NewOrderAdapter creates an OrderAdapter
func NewOrderAdapter(orders order.Repository) *OrderAdapter {
	return &OrderAdapter{orders: orders}
}

// PlaceOrder persists a single-item order in the placed state
func (a *OrderAdapter) PlaceOrder(ctx context.Context, buyerID string, p *assistant.ProductSummary, quantity float64) (string, error) {
	o, err := order.NewOrder(buyerID, p.FarmID, []order.Item{{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		Unit:        p.Unit,
		UnitPrice:   p.Price,
	}})
	if err != nil {
		return "", fmt.Errorf("building order: %w", err)
	}
	if err := a.orders.Create(ctx, o); err != nil {
		if isUnavailable(err) {
			return "", assistant.ErrPersistenceUnavailable
		}
		return "", err
	}
	return o.ID, nil
}

// ListingAdapter exposes the product repository as an assistant.ListingWriter
type ListingAdapter struct {
	products product.Repository
	farms    farm.Repository
}

// NewListingAdapter creates a ListingAdapter
func NewListingAdapter(products product.Repository, farms farm.Repository) *ListingAdapter {
	return &ListingAdapter{products: products, farms: farms}
}

// UpsertListing tops up the farmer's existing listing for the crop, or creates
// one. A repeated "list 25 kg onion" adds stock instead of duplicating rows.
func (a *ListingAdapter) UpsertListing(ctx context.Context, farmerID, name string, quantity float64, unit string, price float64) (string, bool, error) {
	f, err := a.farms.FindByOwner(ctx, farmerID)
	if err != nil {
		if errors.Is(err, ErrFarmNotFound) {
			return "", false, fmt.Errorf("farmer %s has no farm", farmerID)
		}
		if isUnavailable(err) {
			return "", false, assistant.ErrPersistenceUnavailable
		}
		return "", false, err
	}

	existing, err := a.products.FindByFarmAndName(ctx, f.ID, name)
	switch {
	case err == nil:
		existing.Stock += quantity
		if price > 0 {
			existing.Price = price
		}
		if err := a.products.Update(ctx, existing); err != nil {
			return "", false, mapProductErr(err)
		}
		return existing.ID, false, nil
	case errors.Is(err, product.ErrNotFound):
		p, err := product.NewProduct(f.ID, name, "produce", unit, price, quantity)
		if err != nil {
			return "", false, fmt.Errorf("building listing: %w", err)
		}
		if err := a.products.Create(ctx, p); err != nil {
			return "", false, mapProductErr(err)
		}
		return p.ID, true, nil
	default:
		return "", false, mapProductErr(err)
	}
}

// CartAdapter exposes the cart repository as an assistant.CartService
type CartAdapter struct {
	carts    cart.Repository
	products product.Repository
}

// NewCartAdapter creates a CartAdapter
func NewCartAdapter(carts cart.Repository, products product.Repository) *CartAdapter {
	return &CartAdapter{carts: carts, products: products}
}

// AddItem merges quantity of productID into the user's cart. Stock is checked
// against the cart's accumulated quantity for the product; it is only
// decremented at order time.
func (a *CartAdapter) AddItem(ctx context.Context, userID, productID string, quantity float64) error {
	p, err := a.products.FindByID(ctx, productID)
	if err != nil {
		return mapProductErr(err)
	}

	c, err := a.carts.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, cart.ErrNotFound) {
			if isUnavailable(err) {
				return assistant.ErrPersistenceUnavailable
			}
			return err
		}
		if c, err = cart.NewCart(userID); err != nil {
			return err
		}
	}

	held := 0.0
	for _, it := range c.Items {
		if it.ProductID == productID {
			held = it.Quantity
		}
	}
	if !p.InStock(held + quantity) {
		return assistant.ErrInsufficientStock
	}

	if err := c.Merge(productID, quantity, p.Price); err != nil {
		return err
	}
	if err := a.carts.Save(ctx, c); err != nil {
		if isUnavailable(err) {
			return assistant.ErrPersistenceUnavailable
		}
		return err
	}
	return nil
}

func mapProductErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, product.ErrStoreOffline):
		return assistant.ErrPersistenceUnavailable
	case errors.Is(err, product.ErrNotFound):
		return assistant.ErrProductNotFound
	case errors.Is(err, product.ErrInsufficient):
		return assistant.ErrInsufficientStock
	case isUnavailable(err):
		return assistant.ErrPersistenceUnavailable
	default:
		return err
	}
}
