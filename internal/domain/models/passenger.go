package models

import (
	"time"

	"github.com/dauletm/pickup-share/pkg/uuid"
)

// Pickup type labels. Informational only, the column is free text.
const (
	TypeNewPickup       = "New Pickup"
	TypeAddressNotFound = "Address Not Found"
	TypeImported        = "Imported"
)

type Passenger struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Copy returns a duplicate of the passenger owned by newOwner.
// The caller assigns the fresh identifier.
func (p Passenger) Copy(newOwner string) Passenger {
	return Passenger{
		OwnerID:   newOwner,
		Name:      p.Name,
		Address:   p.Address,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Type:      p.Type,
	}
}
