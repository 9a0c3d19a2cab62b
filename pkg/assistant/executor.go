package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellarsoil/marketplace/pkg/logger"
)

// ProductSummary is the catalog's view of a product, enough for the pipeline
// to quote and execute against.
type ProductSummary struct {
	ID       string
	FarmID   string
	Name     string
	Price    float64
	Unit     string
	Stock    float64
	FarmName string
}

// ProductCatalog resolves items and adjusts stock. DecrementStock must be a
// single atomic check-and-decrement at the store: two concurrent
// confirmations racing over the last unit must not both succeed.
type ProductCatalog interface {
	FindByName(ctx context.Context, name string) (*ProductSummary, error)
	DecrementStock(ctx context.Context, productID string, quantity float64) error
	RestoreStock(ctx context.Context, productID string, quantity float64) error
}

// OrderPlacer persists a confirmed order
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, buyerID string, product *ProductSummary, quantity float64) (string, error)
}

// ListingWriter creates or tops up a farmer's product listing. It returns the
// product id and whether a new listing was created.
type ListingWriter interface {
	UpsertListing(ctx context.Context, farmerID, name string, quantity float64, unit string, price float64) (string, bool, error)
}

// CartService appends or merges an item into the user's cart, validating the
// requested quantity against available stock atomically.
type CartService interface {
	AddItem(ctx context.Context, userID, productID string, quantity float64) error
}

// PriceAdvisor suggests a per-unit price for a crop in a region
type PriceAdvisor interface {
	SuggestPrice(ctx context.Context, crop, region string) (float64, error)
}

// ExecutionResult is the outcome of running a confirmed pending action
type ExecutionResult struct {
	Success          bool
	Persisted        bool
	Message          string
	OrderProcessed   bool
	ListingProcessed bool
	CartUpdated      bool
	EstimatedPrice   bool
	ProductID        string
	OrderID          string
	Err              error
}

// Executor applies a confirmed pending action against the domain
// collaborators. It re-validates the action before acting and degrades to a
// simulated (not persisted) result when the store is unreachable.
type Executor struct {
	catalog  ProductCatalog
	orders   OrderPlacer
	listings ListingWriter
	carts    CartService
	prices   PriceAdvisor
	logger   logger.Logger
}

// NewExecutor creates an Executor over the given collaborators
func NewExecutor(catalog ProductCatalog, orders OrderPlacer, listings ListingWriter, carts CartService, prices PriceAdvisor, log logger.Logger) *Executor {
	return &Executor{
		catalog:  catalog,
		orders:   orders,
		listings: listings,
		carts:    carts,
		prices:   prices,
		logger:   log,
	}
}

// Execute runs action on behalf of userID. Only called after an Affirm.
func (e *Executor) Execute(ctx context.Context, userID string, action PendingAction) ExecutionResult {
	if err := action.Validate(); err != nil {
		return ExecutionResult{Message: "That confirmation no longer looks valid. Please start over.", Err: err}
	}

	switch action.Kind {
	case ActionOrder:
		return e.executeOrder(ctx, userID, action)
	case ActionListing:
		return e.executeListing(ctx, userID, action)
	case ActionCart:
		return e.executeCart(ctx, userID, action)
	default:
		return ExecutionResult{Message: "That confirmation no longer looks valid. Please start over.", Err: ErrInvalidToken}
	}
}

func (e *Executor) executeOrder(ctx context.Context, userID string, action PendingAction) ExecutionResult {
	product, err := e.resolveProduct(ctx, action)
	if err != nil {
		if errors.Is(err, ErrPersistenceUnavailable) {
			return e.simulated(action, "order")
		}
		return ExecutionResult{
			Message: fmt.Sprintf("Sorry, %s is no longer available. Let me find you another option.", action.Item),
			Err:     ErrProductNotFound,
		}
	}

	// Stock decrement and order creation form one logical transaction: the
	// decrement is the atomic gate against overselling, and a failed order
	// write compensates it back.
	if err := e.catalog.DecrementStock(ctx, product.ID, action.Quantity); err != nil {
		if errors.Is(err, ErrPersistenceUnavailable) {
			return e.simulated(action, "order")
		}
		if errors.Is(err, ErrInsufficientStock) {
			return ExecutionResult{
				Message:   fmt.Sprintf("Sorry, only %.0f%s of %s is left. Would you like the available quantity instead?", product.Stock, product.Unit, product.Name),
				ProductID: product.ID,
				Err:       ErrInsufficientStock,
			}
		}
		return ExecutionResult{Message: orderFailureMessage, Err: err}
	}

	orderID, err := e.orders.PlaceOrder(ctx, userID, product, action.Quantity)
	if err != nil {
		if rbErr := e.catalog.RestoreStock(ctx, product.ID, action.Quantity); rbErr != nil {
			e.logger.Error("failed to restore stock after order failure", "product_id", product.ID, "error", rbErr)
		}
		if errors.Is(err, ErrPersistenceUnavailable) {
			return e.simulated(action, "order")
		}
		return ExecutionResult{Message: orderFailureMessage, Err: err}
	}

	total := product.Price * action.Quantity
	return ExecutionResult{
		Success:        true,
		Persisted:      true,
		OrderProcessed: true,
		ProductID:      product.ID,
		OrderID:        orderID,
		Message: fmt.Sprintf("Perfect! Your order for %.0f%s of %s from %s is placed. Total: ₹%.2f.",
			action.Quantity, action.Unit, product.Name, product.FarmName, total),
	}
}

func (e *Executor) executeListing(ctx context.Context, userID string, action PendingAction) ExecutionResult {
	price := 0.0
	estimated := false
	if action.Price != nil {
		price = *action.Price
	} else {
		// No price in the message: fall back to the market recommendation
		suggested, err := e.prices.SuggestPrice(ctx, action.Item, "")
		if err != nil {
			e.logger.Warn("price suggestion failed, listing without estimate", "item", action.Item, "error", err)
		} else {
			price = suggested
			estimated = true
		}
	}

	productID, created, err := e.listings.UpsertListing(ctx, userID, action.Item, action.Quantity, action.Unit, price)
	if err != nil {
		if errors.Is(err, ErrPersistenceUnavailable) {
			res := e.simulated(action, "listing")
			res.EstimatedPrice = estimated
			return res
		}
		return ExecutionResult{Message: listingFailureMessage, Err: err}
	}

	verb := "updated"
	if created {
		verb = "listed"
	}
	msg := fmt.Sprintf("Excellent! I've %s your %s: %.0f%s at ₹%.2f per %s. It's now live for customers.",
		verb, action.Item, action.Quantity, action.Unit, price, action.Unit)
	if estimated {
		msg += " The price is a market estimate you can adjust anytime."
	}
	return ExecutionResult{
		Success:          true,
		Persisted:        true,
		ListingProcessed: true,
		EstimatedPrice:   estimated,
		ProductID:        productID,
		Message:          msg,
	}
}

func (e *Executor) executeCart(ctx context.Context, userID string, action PendingAction) ExecutionResult {
	product, err := e.resolveProduct(ctx, action)
	if err != nil {
		if errors.Is(err, ErrPersistenceUnavailable) {
			return e.simulated(action, "cart")
		}
		return ExecutionResult{
			Message: fmt.Sprintf("Sorry, %s is no longer available. Let me find you another option.", action.Item),
			Err:     ErrProductNotFound,
		}
	}

	if err := e.carts.AddItem(ctx, userID, product.ID, action.Quantity); err != nil {
		switch {
		case errors.Is(err, ErrPersistenceUnavailable):
			return e.simulated(action, "cart")
		case errors.Is(err, ErrInsufficientStock):
			return ExecutionResult{
				Message:   fmt.Sprintf("Sorry, only %.0f%s of %s is available right now.", product.Stock, product.Unit, product.Name),
				ProductID: product.ID,
				Err:       ErrInsufficientStock,
			}
		default:
			return ExecutionResult{Message: cartFailureMessage, Err: err}
		}
	}

	return ExecutionResult{
		Success:     true,
		Persisted:   true,
		CartUpdated: true,
		ProductID:   product.ID,
		Message: fmt.Sprintf("Added %.0f%s of %s to your cart. What else would you like?",
			action.Quantity, action.Unit, product.Name),
	}
}

// resolveProduct resolves the action's item through the catalog. When the
// token pinned a product id at prompt time, the resolved product must still
// be that one; the executor never substitutes a different product.
func (e *Executor) resolveProduct(ctx context.Context, action PendingAction) (*ProductSummary, error) {
	product, err := e.catalog.FindByName(ctx, action.Item)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if action.ProductID != "" && product.ID != action.ProductID {
		// The catalog moved under the token; treat as gone rather than
		// silently ordering a different product.
		return nil, ErrProductNotFound
	}
	return product, nil
}

// simulated builds the degraded result used when the store is unreachable.
// It is success-shaped to keep the conversation usable, but Persisted stays
// false and the message says so explicitly.
func (e *Executor) simulated(action PendingAction, kind string) ExecutionResult {
	e.logger.Warn("persistence unavailable, returning simulated result", "kind", kind, "item", action.Item)
	res := ExecutionResult{
		Success:   true,
		Persisted: false,
		Message: fmt.Sprintf("I've noted your %s of %.0f%s %s, but the marketplace is offline right now so it was NOT saved. Please try again in a moment. (offline)",
			kind, action.Quantity, action.Unit, action.Item),
		Err: ErrPersistenceUnavailable,
	}
	switch action.Kind {
	case ActionOrder:
		res.OrderProcessed = true
	case ActionListing:
		res.ListingProcessed = true
	case ActionCart:
		res.CartUpdated = true
	}
	return res
}

const (
	orderFailureMessage   = "I couldn't place that order. Nothing was charged; please try again."
	listingFailureMessage = "I couldn't save that listing. Please try again."
	cartFailureMessage    = "I couldn't update your cart. Please try again."
)
