package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(catalog *mockCatalog, orders *mockOrders, listings *mockListings, carts *mockCarts) *Service {
	if orders == nil {
		orders = &mockOrders{}
	}
	if listings == nil {
		listings = &mockListings{created: true}
	}
	if carts == nil {
		carts = &mockCarts{}
	}
	codec := NewTokenCodec([]byte("test-secret"), 10*time.Minute)
	executor := NewExecutor(catalog, orders, listings, carts, &mockPrices{price: 40}, nopLogger{})
	return NewService(codec, executor, catalog, nopLogger{})
}

func TestOrderFlowProposesThenExecutes(t *testing.T) {
	catalog := newMockCatalog(tomatoSummary(10))
	orders := &mockOrders{}
	svc := newTestService(catalog, orders, nil, nil)
	ctx := context.Background()

	// First turn proposes and persists nothing
	first := svc.HandleMessage(ctx, Request{Text: "Order 3 kg tomato", Role: RoleBuyer, UserID: "buyer-1"})
	require.NotEmpty(t, first.Data.PendingConfirmation)
	require.Equal(t, IntentOrderRequest, first.Data.Intent)
	require.False(t, first.Data.OrderProcessed)
	require.Equal(t, 0, orders.count())
	require.Equal(t, 10.0, catalog.product.Stock)

	// Affirmative executes exactly once
	second := svc.HandleMessage(ctx, Request{
		Text: "yes confirm", Role: RoleBuyer, UserID: "buyer-1",
		PendingToken: first.Data.PendingConfirmation,
	})
	require.True(t, second.Data.OrderProcessed)
	require.NotNil(t, second.Data.Persisted)
	require.True(t, *second.Data.Persisted)
	require.Empty(t, second.Data.PendingConfirmation)
	require.Equal(t, 1, orders.count())
	require.Equal(t, 7.0, catalog.product.Stock)
}

func TestAmbiguousReplyKeepsTokenAlive(t *testing.T) {
	catalog := newMockCatalog(tomatoSummary(10))
	orders := &mockOrders{}
	svc := newTestService(catalog, orders, nil, nil)
	ctx := context.Background()

	first := svc.HandleMessage(ctx, Request{Text: "Order 3 kg tomato", Role: RoleBuyer, UserID: "buyer-1"})
	token := first.Data.PendingConfirmation
	require.NotEmpty(t, token)

	// "maybe" re-prompts with the identical token and executes nothing
	reply := svc.HandleMessage(ctx, Request{
		Text: "maybe", Role: RoleBuyer, UserID: "buyer-1", PendingToken: token,
	})
	require.Equal(t, token, reply.Data.PendingConfirmation)
	require.False(t, reply.Data.OrderProcessed)
	require.Equal(t, 0, orders.count())

	// The kept token still confirms
	confirmed := svc.HandleMessage(ctx, Request{
		Text: "yes", Role: RoleBuyer, UserID: "buyer-1", PendingToken: token,
	})
	require.True(t, confirmed.Data.OrderProcessed)
	require.Equal(t, 1, orders.count())
}

func TestDenyCancelsPendingAction(t *testing.T) {
	catalog := newMockCatalog(tomatoSummary(10))
	orders := &mockOrders{}
	svc := newTestService(catalog, orders, nil, nil)
	ctx := context.Background()

	first := svc.HandleMessage(ctx, Request{Text: "Order 3 kg tomato", Role: RoleBuyer, UserID: "buyer-1"})

	reply := svc.HandleMessage(ctx, Request{
		Text: "no", Role: RoleBuyer, UserID: "buyer-1",
		PendingToken: first.Data.PendingConfirmation,
	})
	require.Empty(t, reply.Data.PendingConfirmation)
	require.False(t, reply.Data.OrderProcessed)
	require.Equal(t, 0, orders.count())
	require.Equal(t, 10.0, catalog.product.Stock)
}

func TestListingFlow(t *testing.T) {
	listings := &mockListings{created: true}
	svc := newTestService(newMockCatalog(nil), nil, listings, nil)
	ctx := context.Background()

	first := svc.HandleMessage(ctx, Request{Text: "List 25 kg onion at 30 rupees", Role: RoleFarmer, UserID: "farmer-1"})
	require.Equal(t, IntentListingRequest, first.Data.Intent)
	require.NotEmpty(t, first.Data.PendingConfirmation)
	require.Equal(t, 0, listings.upserts)

	second := svc.HandleMessage(ctx, Request{
		Text: "yes list it", Role: RoleFarmer, UserID: "farmer-1",
		PendingToken: first.Data.PendingConfirmation,
	})
	require.True(t, second.Data.ListingProcessed)
	require.Equal(t, 1, listings.upserts)
	require.Equal(t, "onion", listings.lastName)
	require.Equal(t, 30.0, listings.price)
}

func TestMissingQuantityYieldsNoToken(t *testing.T) {
	svc := newTestService(newMockCatalog(tomatoSummary(10)), nil, nil, nil)

	reply := svc.HandleMessage(context.Background(), Request{
		Text: "Order banana", Role: RoleBuyer, UserID: "buyer-1",
	})
	require.Empty(t, reply.Data.PendingConfirmation)
	require.Equal(t, "MISSING_QUANTITY", reply.Data.ErrorCode)
}

func TestInvalidTokenFallsBackToClassification(t *testing.T) {
	catalog := newMockCatalog(tomatoSummary(10))
	orders := &mockOrders{}
	svc := newTestService(catalog, orders, nil, nil)

	reply := svc.HandleMessage(context.Background(), Request{
		Text: "Order 3 kg tomato", Role: RoleBuyer, UserID: "buyer-1",
		PendingToken: "not-a-real-token",
	})
	// The forged token is discarded and the turn is treated as a fresh request
	require.Equal(t, IntentOrderRequest, reply.Data.Intent)
	require.NotEmpty(t, reply.Data.PendingConfirmation)
	require.Equal(t, 0, orders.count())
}

func TestProductNotFoundAtPromptTime(t *testing.T) {
	svc := newTestService(newMockCatalog(nil), nil, nil, nil)

	reply := svc.HandleMessage(context.Background(), Request{
		Text: "Order 3 kg tomato", Role: RoleBuyer, UserID: "buyer-1",
	})
	require.Empty(t, reply.Data.PendingConfirmation)
	require.Equal(t, "PRODUCT_NOT_FOUND", reply.Data.ErrorCode)
}

func TestOfflineConfirmationIsSimulated(t *testing.T) {
	catalog := newMockCatalog(tomatoSummary(10))
	orders := &mockOrders{}
	svc := newTestService(catalog, orders, nil, nil)
	ctx := context.Background()

	first := svc.HandleMessage(ctx, Request{Text: "Order 3 kg tomato", Role: RoleBuyer, UserID: "buyer-1"})
	require.NotEmpty(t, first.Data.PendingConfirmation)

	// The store goes down between prompt and confirmation
	catalog.mu.Lock()
	catalog.findErr = ErrPersistenceUnavailable
	catalog.mu.Unlock()

	second := svc.HandleMessage(ctx, Request{
		Text: "yes", Role: RoleBuyer, UserID: "buyer-1",
		PendingToken: first.Data.PendingConfirmation,
	})
	require.True(t, second.Data.OrderProcessed)
	require.NotNil(t, second.Data.Persisted)
	require.False(t, *second.Data.Persisted)
	require.Equal(t, 0, orders.count())
}

func TestNearbyAndUnknownIntents(t *testing.T) {
	svc := newTestService(newMockCatalog(nil), nil, nil, nil)
	ctx := context.Background()

	nearby := svc.HandleMessage(ctx, Request{Text: "what is available near me", Role: RoleBuyer})
	require.Equal(t, IntentNearbyQuery, nearby.Data.Intent)

	unknown := svc.HandleMessage(ctx, Request{Text: "hello", Role: RoleFarmer})
	require.Equal(t, IntentUnknown, unknown.Data.Intent)
	require.NotEmpty(t, unknown.Message)
}
