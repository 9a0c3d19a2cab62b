package user

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUserNormalizesInput(t *testing.T) {
	u, err := NewUser("  Asha  ", " ASHA@Example.COM ", "hash", RoleBuyer)
	require.NoError(t, err)
	require.Equal(t, "Asha", u.Name)
	require.Equal(t, "asha@example.com", u.Email)
	require.True(t, u.Active)
	require.True(t, u.Verified)
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "asha@example.com", "hash", RoleBuyer)
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewUser("Asha", "not-an-email", "hash", RoleBuyer)
	require.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewUser("Asha", "asha@example.com", "hash", Role("vendor"))
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestFarmersStartUnverified(t *testing.T) {
	u, err := NewUser("Asha", "asha@example.com", "hash", RoleFarmer)
	require.NoError(t, err)
	require.False(t, u.Verified)
	require.True(t, u.IsFarmer())
}
