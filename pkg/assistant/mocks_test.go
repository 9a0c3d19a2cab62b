package assistant

import (
	"context"
	"sync"
)

// nopLogger satisfies logger.Logger for tests
type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

// mockCatalog is an in-memory ProductCatalog with real check-and-decrement
// semantics guarded by a mutex.
type mockCatalog struct {
	mu       sync.Mutex
	product  *ProductSummary
	findErr  error
	decErr   error
	restored float64
}

func newMockCatalog(p *ProductSummary) *mockCatalog {
	return &mockCatalog{product: p}
}

func (m *mockCatalog) FindByName(ctx context.Context, name string) (*ProductSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.product == nil || m.product.Name != name {
		return nil, ErrProductNotFound
	}
	cp := *m.product
	return &cp, nil
}

func (m *mockCatalog) DecrementStock(ctx context.Context, productID string, quantity float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.decErr != nil {
		return m.decErr
	}
	if m.product == nil || m.product.ID != productID || m.product.Stock < quantity {
		return ErrInsufficientStock
	}
	m.product.Stock -= quantity
	return nil
}

func (m *mockCatalog) RestoreStock(ctx context.Context, productID string, quantity float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restored += quantity
	if m.product != nil && m.product.ID == productID {
		m.product.Stock += quantity
	}
	return nil
}

// mockOrders counts placed orders and can fail on demand
type mockOrders struct {
	mu     sync.Mutex
	placed int
	err    error
}

func (m *mockOrders) PlaceOrder(ctx context.Context, buyerID string, product *ProductSummary, quantity float64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.placed++
	return "order-1", nil
}

func (m *mockOrders) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.placed
}

// mockListings records upserts
type mockListings struct {
	upserts  int
	lastName string
	price    float64
	created  bool
	err      error
}

func (m *mockListings) UpsertListing(ctx context.Context, farmerID, name string, quantity float64, unit string, price float64) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	m.upserts++
	m.lastName = name
	m.price = price
	return "product-1", m.created, nil
}

// mockCarts records added items
type mockCarts struct {
	added int
	err   error
}

func (m *mockCarts) AddItem(ctx context.Context, userID, productID string, quantity float64) error {
	if m.err != nil {
		return m.err
	}
	m.added++
	return nil
}

// mockPrices returns a fixed suggestion
type mockPrices struct {
	price float64
	err   error
}

func (m *mockPrices) SuggestPrice(ctx context.Context, crop, region string) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.price, nil
}
