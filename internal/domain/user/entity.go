package user

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
)

var emailPattern = regexp.MustCompile(`^[\w.+-]+@[\w-]+(\.[\w-]+)+$`)

// Role defines what a user can do on the marketplace
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleFarmer Role = "farmer"
	RoleAdmin  Role = "admin"
)

// User represents an account on the platform
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	FarmID       string    `json:"farm_id,omitempty"` // set once a farmer registers a farm
	Active       bool      `json:"active"`
	Verified     bool      `json:"verified"` // farmer accounts require verification
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser creates a new user. passwordHash must already be hashed.
func NewUser(name, email, passwordHash string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, ErrEmptyName
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	switch role {
	case RoleBuyer, RoleFarmer, RoleAdmin:
	default:
		return nil, ErrInvalidRole
	}

	now := time.Now()
	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		Verified:     role != RoleFarmer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsFarmer reports whether the user sells on the platform
func (u *User) IsFarmer() bool {
	return u.Role == RoleFarmer
}
