package auth

import (
	"testing"

	"github.com/stellarsoil/marketplace/internal/domain/user"
	"github.com/stretchr/testify/require"
)

func testJWTService(t *testing.T) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	s, err := NewJWTService()
	require.NoError(t, err)
	return s
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Asha", "asha@example.com", "hash", user.RoleFarmer)
	require.NoError(t, err)
	u.FarmID = "farm-1"
	return u
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := testJWTService(t)
	u := testUser(t)

	token, err := s.GenerateToken(u)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
	require.Equal(t, u.Email, claims.Email)
	require.Equal(t, "farmer", claims.Role)
	require.Equal(t, "farm-1", claims.FarmID)
}

func TestValidateRejectsGarbage(t *testing.T) {
	s := testJWTService(t)

	_, err := s.ValidateToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret-a")
	a, err := NewJWTService()
	require.NoError(t, err)
	token, err := a.GenerateToken(testUser(t))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "secret-b")
	b, err := NewJWTService()
	require.NoError(t, err)

	_, err = b.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshReissuesToken(t *testing.T) {
	s := testJWTService(t)
	u := testUser(t)

	token, err := s.GenerateToken(u)
	require.NoError(t, err)

	refreshed, err := s.RefreshToken(token)
	require.NoError(t, err)

	claims, err := s.ValidateToken(refreshed)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	_, err := NewJWTService()
	require.ErrorIs(t, err, ErrMissingJWTKey)
}
