package farm

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("farm name cannot be empty")
	ErrEmptyOwner = errors.New("farm owner cannot be empty")
)

// Farm is a farmer's selling profile; products belong to a farm
type Farm struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewFarm creates a farm owned by ownerID
func NewFarm(ownerID, name, description, address string, lat, lon float64) (*Farm, error) {
	name = strings.TrimSpace(name)
	if ownerID == "" {
		return nil, ErrEmptyOwner
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Farm{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Address:     address,
		Latitude:    lat,
		Longitude:   lon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
