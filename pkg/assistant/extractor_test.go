package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractOrder(t *testing.T) {
	e := NewExtractor()

	slots, err := e.Extract("Order 3 kg tomato", IntentOrderRequest)
	require.NoError(t, err)
	require.Equal(t, "tomato", slots.Item)
	require.Equal(t, 3.0, slots.Quantity)
	require.Equal(t, "kg", slots.Unit)
	require.Nil(t, slots.Price)
}

func TestExtractListingWithPrice(t *testing.T) {
	e := NewExtractor()

	slots, err := e.Extract("List 25 kg onion at 30 rupees", IntentListingRequest)
	require.NoError(t, err)
	require.Equal(t, "onion", slots.Item)
	require.Equal(t, 25.0, slots.Quantity)
	require.Equal(t, "kg", slots.Unit)
	require.NotNil(t, slots.Price)
	require.Equal(t, 30.0, *slots.Price)
}

func TestExtractListingRupeeSymbol(t *testing.T) {
	e := NewExtractor()

	slots, err := e.Extract("selling 10 kg mango @ ₹120", IntentListingRequest)
	require.NoError(t, err)
	require.Equal(t, "mango", slots.Item)
	require.Equal(t, 10.0, slots.Quantity)
	require.NotNil(t, slots.Price)
	require.Equal(t, 120.0, *slots.Price)
}

func TestExtractListingWithoutPrice(t *testing.T) {
	e := NewExtractor()

	slots, err := e.Extract("list 50 kg wheat", IntentListingRequest)
	require.NoError(t, err)
	require.Equal(t, "wheat", slots.Item)
	require.Nil(t, slots.Price)
}

func TestExtractPriceDigitsAreNotAQuantity(t *testing.T) {
	e := NewExtractor()

	// The only number belongs to the price expression
	_, err := e.Extract("sell onion at 30 rupees", IntentListingRequest)
	require.ErrorIs(t, err, ErrMissingQuantity)
}

func TestExtractMissingQuantity(t *testing.T) {
	e := NewExtractor()

	_, err := e.Extract("Order banana", IntentOrderRequest)
	require.ErrorIs(t, err, ErrMissingQuantity)
}

func TestExtractZeroQuantity(t *testing.T) {
	e := NewExtractor()

	_, err := e.Extract("order 0 kg onion", IntentOrderRequest)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestExtractUnknownItem(t *testing.T) {
	e := NewExtractor()

	_, err := e.Extract("order 3 kg saffron", IntentOrderRequest)
	require.ErrorIs(t, err, ErrUnknownItem)
}

func TestExtractSpelledQuantity(t *testing.T) {
	e := NewExtractor()

	slots, err := e.Extract("order two kg tomatoes", IntentOrderRequest)
	require.NoError(t, err)
	require.Equal(t, 2.0, slots.Quantity)
	require.Equal(t, "tomato", slots.Item)
}

func TestExtractArticleBeforeUnit(t *testing.T) {
	e := NewExtractor()

	slots, err := e.Extract("buy a dozen bananas", IntentOrderRequest)
	require.NoError(t, err)
	require.Equal(t, 1.0, slots.Quantity)
	require.Equal(t, "dozen", slots.Unit)
	require.Equal(t, "banana", slots.Item)
}

func TestExtractDefaultUnit(t *testing.T) {
	e := NewExtractor()

	slots, err := e.Extract("order 3 tomato", IntentOrderRequest)
	require.NoError(t, err)
	require.Equal(t, DefaultUnit, slots.Unit)
}

func TestExtractDecimalQuantity(t *testing.T) {
	e := NewExtractor()

	slots, err := e.Extract("need 1.5 kg ginger", IntentOrderRequest)
	require.NoError(t, err)
	require.Equal(t, 1.5, slots.Quantity)
	require.Equal(t, "ginger", slots.Item)
}
