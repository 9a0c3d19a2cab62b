package cart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeAccumulatesSameProduct(t *testing.T) {
	c, err := NewCart("user-1")
	require.NoError(t, err)

	require.NoError(t, c.Merge("p1", 2, 45))
	require.NoError(t, c.Merge("p1", 3, 45))
	require.NoError(t, c.Merge("p2", 1, 35))

	require.Len(t, c.Items, 2)
	require.Equal(t, 5.0, c.Items[0].Quantity)
	require.Equal(t, 5*45.0+1*35.0, c.Total())
}

func TestMergeRejectsNonPositiveQuantity(t *testing.T) {
	c, err := NewCart("user-1")
	require.NoError(t, err)

	require.ErrorIs(t, c.Merge("p1", 0, 45), ErrInvalidQuantity)
	require.ErrorIs(t, c.Merge("p1", -2, 45), ErrInvalidQuantity)
}

func TestRemove(t *testing.T) {
	c, err := NewCart("user-1")
	require.NoError(t, err)
	require.NoError(t, c.Merge("p1", 2, 45))
	require.NoError(t, c.Merge("p2", 1, 35))

	c.Remove("p1")
	require.Len(t, c.Items, 1)
	require.Equal(t, "p2", c.Items[0].ProductID)

	// Removing an absent product is a no-op
	c.Remove("p9")
	require.Len(t, c.Items, 1)
}

func TestNewCartRequiresUser(t *testing.T) {
	_, err := NewCart("")
	require.ErrorIs(t, err, ErrEmptyUser)
}
