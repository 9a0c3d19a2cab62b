package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		role Role
		want Intent
	}{
		{"buyer order", "Order 3 kg tomato", RoleBuyer, IntentOrderRequest},
		{"buyer buy", "I want to buy onions", RoleBuyer, IntentOrderRequest},
		{"buyer need", "need 2 kg potato", RoleBuyer, IntentOrderRequest},
		{"buyer cart", "add 2 kg tomato to my cart", RoleBuyer, IntentAddToCart},
		{"cart wins over order", "add what I ordered to the cart", RoleBuyer, IntentAddToCart},
		{"farmer listing", "List 25 kg onion at 30 rupees", RoleFarmer, IntentListingRequest},
		{"farmer selling", "I am selling fresh spinach", RoleFarmer, IntentListingRequest},
		{"farmer i have", "i have 50 kg mango", RoleFarmer, IntentListingRequest},
		{"nearby", "what vegetables are available near me", RoleBuyer, IntentNearbyQuery},
		{"bare crop is a browse", "tomatoes", RoleBuyer, IntentNearbyQuery},
		{"listing verb from buyer is not a listing", "list my favorites", RoleBuyer, IntentUnknown},
		{"order verb from farmer is not an order", "I want better prices", RoleFarmer, IntentUnknown},
		{"greeting", "hello there", RoleBuyer, IntentUnknown},
		{"empty", "   ", RoleBuyer, IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, c.Classify(tt.text, tt.role))
		})
	}
}
