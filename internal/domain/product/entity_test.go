package product

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProductNormalizesName(t *testing.T) {
	p, err := NewProduct("farm-1", "  Tomato ", "", "kg", 45, 100)
	require.NoError(t, err)
	require.Equal(t, "tomato", p.Name)
	require.Equal(t, "produce", p.Category)
	require.True(t, p.Active)
	require.NotEmpty(t, p.ID)
}

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct("", "tomato", "", "kg", 45, 100)
	require.ErrorIs(t, err, ErrEmptyFarm)

	_, err = NewProduct("farm-1", "  ", "", "kg", 45, 100)
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("farm-1", "tomato", "", "", 45, 100)
	require.ErrorIs(t, err, ErrEmptyUnit)

	_, err = NewProduct("farm-1", "tomato", "", "kg", 0, 100)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct("farm-1", "tomato", "", "kg", 45, -1)
	require.ErrorIs(t, err, ErrInvalidStock)
}

func TestInStock(t *testing.T) {
	p, err := NewProduct("farm-1", "tomato", "", "kg", 45, 5)
	require.NoError(t, err)

	require.True(t, p.InStock(5))
	require.False(t, p.InStock(5.5))

	p.Active = false
	require.False(t, p.InStock(1))
}
