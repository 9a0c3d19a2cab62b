package dto

import (
	"time"

	"github.com/stellarsoil/marketplace/internal/domain/farm"
)

// FarmRequest carries the data to register or update a farm
type FarmRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address" binding:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// FarmResponse is the public view of a farm
type FarmResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}

// FarmListResponse wraps a page of farms
type FarmListResponse struct {
	Data  []FarmResponse `json:"data"`
	Count int            `json:"count"`
}

// ToFarmResponse converts a domain farm to its response DTO
func ToFarmResponse(f *farm.Farm) FarmResponse {
	return FarmResponse{
		ID:          f.ID,
		OwnerID:     f.OwnerID,
		Name:        f.Name,
		Description: f.Description,
		Address:     f.Address,
		Latitude:    f.Latitude,
		Longitude:   f.Longitude,
		CreatedAt:   f.CreatedAt,
	}
}

// ToFarmListResponse converts a slice of domain farms
func ToFarmListResponse(farms []*farm.Farm) FarmListResponse {
	out := make([]FarmResponse, len(farms))
	for i, f := range farms {
		out[i] = ToFarmResponse(f)
	}
	return FarmListResponse{Data: out, Count: len(out)}
}
