package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/domain/product"
	"github.com/stellarsoil/marketplace/pkg/assistant"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

// stubCatalog serves a single product
type stubCatalog struct {
	product *assistant.ProductSummary
}

func (s *stubCatalog) FindByName(ctx context.Context, name string) (*assistant.ProductSummary, error) {
	if s.product == nil || s.product.Name != name {
		return nil, assistant.ErrProductNotFound
	}
	cp := *s.product
	return &cp, nil
}

func (s *stubCatalog) DecrementStock(ctx context.Context, productID string, quantity float64) error {
	if s.product == nil || s.product.Stock < quantity {
		return assistant.ErrInsufficientStock
	}
	s.product.Stock -= quantity
	return nil
}

func (s *stubCatalog) RestoreStock(ctx context.Context, productID string, quantity float64) error {
	s.product.Stock += quantity
	return nil
}

type stubOrders struct{ placed int }

func (s *stubOrders) PlaceOrder(ctx context.Context, buyerID string, p *assistant.ProductSummary, quantity float64) (string, error) {
	s.placed++
	return "order-1", nil
}

type stubListings struct{}

func (stubListings) UpsertListing(ctx context.Context, farmerID, name string, quantity float64, unit string, price float64) (string, bool, error) {
	return "product-1", true, nil
}

type stubCarts struct{ added int }

func (s *stubCarts) AddItem(ctx context.Context, userID, productID string, quantity float64) error {
	s.added++
	return nil
}

type stubPrices struct{}

func (stubPrices) SuggestPrice(ctx context.Context, crop, region string) (float64, error) {
	return 40, nil
}

// stubProductRepo implements the subset of product.Repository the chat
// endpoints touch.
type stubProductRepo struct {
	products []*product.Product
}

func (s *stubProductRepo) Create(ctx context.Context, p *product.Product) error { return nil }
func (s *stubProductRepo) Update(ctx context.Context, p *product.Product) error { return nil }
func (s *stubProductRepo) Delete(ctx context.Context, id string) error          { return nil }
func (s *stubProductRepo) DecrementStock(ctx context.Context, id string, qty float64) error {
	return nil
}
func (s *stubProductRepo) RestoreStock(ctx context.Context, id string, qty float64) error {
	return nil
}
func (s *stubProductRepo) FindByID(ctx context.Context, id string) (*product.Product, error) {
	return nil, product.ErrNotFound
}
func (s *stubProductRepo) FindActiveByName(ctx context.Context, name string) (*product.Product, error) {
	return nil, product.ErrNotFound
}
func (s *stubProductRepo) FindByFarmAndName(ctx context.Context, farmID, name string) (*product.Product, error) {
	return nil, product.ErrNotFound
}
func (s *stubProductRepo) FindByFarm(ctx context.Context, farmID string) ([]*product.Product, error) {
	return s.products, nil
}
func (s *stubProductRepo) Search(ctx context.Context, name string, limit int) ([]*product.Product, error) {
	return s.products, nil
}

func authAs(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func newChatRouter(t *testing.T, catalog *stubCatalog, orders *stubOrders, carts *stubCarts, repo *stubProductRepo, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec := assistant.NewTokenCodec([]byte("test-secret"), 10*time.Minute)
	executor := assistant.NewExecutor(catalog, orders, stubListings{}, carts, stubPrices{}, nopLogger{})
	svc := assistant.NewService(codec, executor, catalog, nopLogger{})
	ctrl := NewChatController(svc, carts, repo, nopLogger{})

	router := gin.New()
	chat := router.Group("/chat")
	chat.Use(authAs("user-1", role))
	chat.POST("/message", ctrl.Message)
	chat.POST("/add-to-cart", ctrl.AddToCart)
	chat.GET("/nearby-products", ctrl.NearbyProducts)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatMessageOrderFlow(t *testing.T) {
	catalog := &stubCatalog{product: &assistant.ProductSummary{
		ID: "prod-1", FarmID: "farm-1", Name: "tomato", Price: 45, Unit: "kg", Stock: 10, FarmName: "Green Valley",
	}}
	orders := &stubOrders{}
	router := newChatRouter(t, catalog, orders, &stubCarts{}, &stubProductRepo{}, "buyer")

	w := postJSON(t, router, "/chat/message", gin.H{"message": "Order 3 kg tomato"})
	require.Equal(t, http.StatusOK, w.Code)

	var first assistant.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.NotEmpty(t, first.Data.PendingConfirmation)
	require.Equal(t, 0, orders.placed)

	w = postJSON(t, router, "/chat/message", gin.H{
		"message":      "yes confirm",
		"pendingToken": first.Data.PendingConfirmation,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var second assistant.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	require.True(t, second.Data.OrderProcessed)
	require.Equal(t, 1, orders.placed)
	require.Equal(t, 7.0, catalog.product.Stock)
}

func TestChatMessageRequiresBody(t *testing.T) {
	router := newChatRouter(t, &stubCatalog{}, &stubOrders{}, &stubCarts{}, &stubProductRepo{}, "buyer")

	w := postJSON(t, router, "/chat/message", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatAddToCart(t *testing.T) {
	carts := &stubCarts{}
	router := newChatRouter(t, &stubCatalog{}, &stubOrders{}, carts, &stubProductRepo{}, "buyer")

	w := postJSON(t, router, "/chat/add-to-cart", gin.H{"productId": "prod-1", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, carts.added)
}

func TestChatNearbyProducts(t *testing.T) {
	p, err := product.NewProduct("farm-1", "tomato", "", "kg", 45, 10)
	require.NoError(t, err)
	router := newChatRouter(t, &stubCatalog{}, &stubOrders{}, &stubCarts{}, &stubProductRepo{products: []*product.Product{p}}, "buyer")

	req := httptest.NewRequest(http.MethodGet, "/chat/nearby-products?name=tomato", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
}
