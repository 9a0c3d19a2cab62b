package dto

import (
	"time"

	"github.com/stellarsoil/marketplace/internal/domain/user"
)

// RegisterRequest carries the data to create an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=buyer farmer"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// LoginRequest carries the credentials for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the token to renew
type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}

// TokenResponse returns an issued access token with the account it belongs to
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"` // seconds
	User      UserResponse `json:"user"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	FarmID    string    `json:"farm_id,omitempty"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain user to its response DTO
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		Address:   u.Address,
		FarmID:    u.FarmID,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}
