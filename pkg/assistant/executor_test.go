package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func tomatoSummary(stock float64) *ProductSummary {
	return &ProductSummary{
		ID:       "prod-1",
		FarmID:   "farm-1",
		Name:     "tomato",
		Price:    45,
		Unit:     "kg",
		Stock:    stock,
		FarmName: "Green Valley Farm",
	}
}

func newTestExecutor(catalog *mockCatalog, orders *mockOrders, listings *mockListings, carts *mockCarts, prices *mockPrices) *Executor {
	if orders == nil {
		orders = &mockOrders{}
	}
	if listings == nil {
		listings = &mockListings{}
	}
	if carts == nil {
		carts = &mockCarts{}
	}
	if prices == nil {
		prices = &mockPrices{price: 40}
	}
	return NewExecutor(catalog, orders, listings, carts, prices, nopLogger{})
}

func TestExecuteOrderSuccess(t *testing.T) {
	catalog := newMockCatalog(tomatoSummary(10))
	orders := &mockOrders{}
	e := newTestExecutor(catalog, orders, nil, nil, nil)

	res := e.Execute(context.Background(), "buyer-1", PendingAction{
		Kind: ActionOrder, Item: "tomato", ProductID: "prod-1", Quantity: 3, Unit: "kg",
	})

	require.True(t, res.Success)
	require.True(t, res.Persisted)
	require.True(t, res.OrderProcessed)
	require.Equal(t, "order-1", res.OrderID)
	require.Equal(t, 1, orders.count())
	require.Equal(t, 7.0, catalog.product.Stock)
}

func TestExecuteOrderInsufficientStock(t *testing.T) {
	catalog := newMockCatalog(tomatoSummary(2))
	orders := &mockOrders{}
	e := newTestExecutor(catalog, orders, nil, nil, nil)

	res := e.Execute(context.Background(), "buyer-1", PendingAction{
		Kind: ActionOrder, Item: "tomato", Quantity: 5, Unit: "kg",
	})

	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, ErrInsufficientStock)
	require.Equal(t, 0, orders.count())
	require.Equal(t, 2.0, catalog.product.Stock)
}

func TestExecuteOrderProductGone(t *testing.T) {
	catalog := newMockCatalog(nil)
	e := newTestExecutor(catalog, nil, nil, nil, nil)

	res := e.Execute(context.Background(), "buyer-1", PendingAction{
		Kind: ActionOrder, Item: "tomato", Quantity: 3, Unit: "kg",
	})

	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, ErrProductNotFound)
}

func TestExecuteOrderPinnedProductMismatch(t *testing.T) {
	catalog := newMockCatalog(tomatoSummary(10))
	orders := &mockOrders{}
	e := newTestExecutor(catalog, orders, nil, nil, nil)

	// Token was minted against a different product id
	res := e.Execute(context.Background(), "buyer-1", PendingAction{
		Kind: ActionOrder, Item: "tomato", ProductID: "prod-other", Quantity: 3, Unit: "kg",
	})

	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, ErrProductNotFound)
	require.Equal(t, 0, orders.count())
}

func TestExecuteOrderRollsBackStockOnWriteFailure(t *testing.T) {
	catalog := newMockCatalog(tomatoSummary(10))
	orders := &mockOrders{err: errors.New("write failed")}
	e := newTestExecutor(catalog, orders, nil, nil, nil)

	res := e.Execute(context.Background(), "buyer-1", PendingAction{
		Kind: ActionOrder, Item: "tomato", Quantity: 3, Unit: "kg",
	})

	require.False(t, res.Success)
	require.Equal(t, 10.0, catalog.product.Stock)
	require.Equal(t, 3.0, catalog.restored)
}

func TestExecuteOrderOfflineSimulated(t *testing.T) {
	catalog := newMockCatalog(nil)
	catalog.findErr = ErrPersistenceUnavailable
	orders := &mockOrders{}
	e := newTestExecutor(catalog, orders, nil, nil, nil)

	res := e.Execute(context.Background(), "buyer-1", PendingAction{
		Kind: ActionOrder, Item: "tomato", Quantity: 3, Unit: "kg",
	})

	require.True(t, res.Success)
	require.False(t, res.Persisted)
	require.True(t, res.OrderProcessed)
	require.Contains(t, strings.ToLower(res.Message), "offline")
	require.Equal(t, 0, orders.count())
}

func TestConcurrentConfirmationsNeverOversell(t *testing.T) {
	catalog := newMockCatalog(tomatoSummary(1))
	orders := &mockOrders{}
	e := newTestExecutor(catalog, orders, nil, nil, nil)

	action := PendingAction{Kind: ActionOrder, Item: "tomato", ProductID: "prod-1", Quantity: 1, Unit: "kg"}

	const confirmations = 8
	results := make([]ExecutionResult, confirmations)
	var wg sync.WaitGroup
	for i := 0; i < confirmations; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Execute(context.Background(), "buyer-1", action)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, res := range results {
		if res.Success {
			succeeded++
		}
	}
	require.Equal(t, 1, succeeded)
	require.Equal(t, 1, orders.count())
	require.Equal(t, 0.0, catalog.product.Stock)
}

func TestExecuteListingWithStatedPrice(t *testing.T) {
	listings := &mockListings{created: true}
	e := newTestExecutor(newMockCatalog(nil), nil, listings, nil, nil)

	price := 30.0
	res := e.Execute(context.Background(), "farmer-1", PendingAction{
		Kind: ActionListing, Item: "onion", Quantity: 25, Unit: "kg", Price: &price,
	})

	require.True(t, res.Success)
	require.True(t, res.Persisted)
	require.True(t, res.ListingProcessed)
	require.False(t, res.EstimatedPrice)
	require.Equal(t, 30.0, listings.price)
}

func TestExecuteListingSuggestsPrice(t *testing.T) {
	listings := &mockListings{created: true}
	prices := &mockPrices{price: 35}
	e := newTestExecutor(newMockCatalog(nil), nil, listings, nil, prices)

	res := e.Execute(context.Background(), "farmer-1", PendingAction{
		Kind: ActionListing, Item: "onion", Quantity: 25, Unit: "kg",
	})

	require.True(t, res.Success)
	require.True(t, res.ListingProcessed)
	require.True(t, res.EstimatedPrice)
	require.Equal(t, 35.0, listings.price)
}

func TestExecuteListingOfflineSimulated(t *testing.T) {
	listings := &mockListings{err: ErrPersistenceUnavailable}
	e := newTestExecutor(newMockCatalog(nil), nil, listings, nil, nil)

	price := 30.0
	res := e.Execute(context.Background(), "farmer-1", PendingAction{
		Kind: ActionListing, Item: "onion", Quantity: 25, Unit: "kg", Price: &price,
	})

	require.True(t, res.Success)
	require.False(t, res.Persisted)
	require.True(t, res.ListingProcessed)
}

func TestExecuteCartSuccess(t *testing.T) {
	carts := &mockCarts{}
	e := newTestExecutor(newMockCatalog(tomatoSummary(10)), nil, nil, carts, nil)

	res := e.Execute(context.Background(), "buyer-1", PendingAction{
		Kind: ActionCart, Item: "tomato", ProductID: "prod-1", Quantity: 2, Unit: "kg",
	})

	require.True(t, res.Success)
	require.True(t, res.CartUpdated)
	require.Equal(t, 1, carts.added)
}

func TestExecuteRejectsMalformedAction(t *testing.T) {
	e := newTestExecutor(newMockCatalog(nil), nil, nil, nil, nil)

	res := e.Execute(context.Background(), "buyer-1", PendingAction{Kind: ActionOrder})
	require.False(t, res.Success)
	require.Error(t, res.Err)
}
