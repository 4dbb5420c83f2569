package dto

import (
	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/pkg/validator"
)

type CreatePassengerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	OwnerID string `json:"ownerId"`
}

func (r *CreatePassengerRequest) Validate(v *validator.Validator) {
	v.Check(r.Name != "", "name", "must be provided")
	v.Check(len(r.Name) < 100, "name", "must be less than 100 characters")

	v.Check(r.Address != "", "address", "must be provided")
	v.Check(len(r.Address) < 200, "address", "must be less than 200 characters")

	v.Check(r.OwnerID != "", "ownerId", "must be provided")
	v.Check(len(r.OwnerID) < 100, "ownerId", "must be less than 100 characters")
}

type PassengerResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Type    string  `json:"type"`
	OwnerID string  `json:"ownerId"`
}

func ToPassengerResponse(p models.Passenger) PassengerResponse {
	return PassengerResponse{
		ID:      p.ID.String(),
		Name:    p.Name,
		Address: p.Address,
		Lat:     p.Latitude,
		Lng:     p.Longitude,
		Type:    p.Type,
		OwnerID: p.OwnerID,
	}
}

func ToPassengerListResponse(passengers []models.Passenger) []PassengerResponse {
	out := make([]PassengerResponse, 0, len(passengers))
	for _, p := range passengers {
		out = append(out, ToPassengerResponse(p))
	}
	return out
}
