package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testCodec(ttl time.Duration) *TokenCodec {
	return NewTokenCodec([]byte("test-secret"), ttl)
}

func TestTokenRoundTrip(t *testing.T) {
	codec := testCodec(0)
	price := 30.0
	action := PendingAction{
		Kind:      ActionListing,
		Item:      "onion",
		Quantity:  25,
		Unit:      "kg",
		Price:     &price,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	token, err := codec.Encode(action)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	require.Equal(t, action.Kind, decoded.Kind)
	require.Equal(t, action.Item, decoded.Item)
	require.Equal(t, action.Quantity, decoded.Quantity)
	require.Equal(t, action.Unit, decoded.Unit)
	require.NotNil(t, decoded.Price)
	require.Equal(t, *action.Price, *decoded.Price)
}

func TestTokenTamperDetection(t *testing.T) {
	codec := testCodec(0)
	token, err := codec.Encode(PendingAction{
		Kind: ActionOrder, Item: "tomato", Quantity: 3, Unit: "kg",
	})
	require.NoError(t, err)

	// Flip a character in the payload section
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = codec.Decode(string(tampered))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := testCodec(0).Encode(PendingAction{
		Kind: ActionOrder, Item: "tomato", Quantity: 3, Unit: "kg",
	})
	require.NoError(t, err)

	other := NewTokenCodec([]byte("another-secret"), 0)
	_, err = other.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpiry(t *testing.T) {
	codec := testCodec(time.Minute)
	token, err := codec.Encode(PendingAction{
		Kind:      ActionOrder,
		Item:      "tomato",
		Quantity:  3,
		Unit:      "kg",
		CreatedAt: time.Now().Add(-2 * time.Minute),
	})
	require.NoError(t, err)

	_, err = codec.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestEncodeRejectsMalformedAction(t *testing.T) {
	codec := testCodec(0)

	_, err := codec.Encode(PendingAction{Kind: ActionOrder, Item: "", Quantity: 3, Unit: "kg"})
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = codec.Encode(PendingAction{Kind: "transfer", Item: "tomato", Quantity: 3, Unit: "kg"})
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = codec.Encode(PendingAction{Kind: ActionOrder, Item: "tomato", Quantity: -1, Unit: "kg"})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsNonPositivePrice(t *testing.T) {
	bad := -5.0
	err := PendingAction{
		Kind: ActionListing, Item: "onion", Quantity: 10, Unit: "kg", Price: &bad,
	}.Validate()
	require.ErrorIs(t, err, ErrInvalidToken)
}
