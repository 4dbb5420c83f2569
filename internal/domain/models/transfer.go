package models

import (
	"time"

	"github.com/dauletm/pickup-share/pkg/uuid"
)

// Transfer is a pending share code referencing a frozen set of passenger
// identifiers. The set is a snapshot taken at share time, not a live query:
// passengers deleted afterwards are skipped silently during redemption.
type Transfer struct {
	Code         string      `json:"code"`
	PassengerIDs []uuid.UUID `json:"passenger_ids"`
	Destination  string      `json:"destination"`
	CreatedAt    time.Time   `json:"created_at"`
}

// RedeemResult is what the importing driver gets back: the destination label
// carried through from the share, and the identifiers of the freshly copied
// passengers so the client can highlight them.
type RedeemResult struct {
	Destination  string      `json:"destination"`
	PassengerIDs []uuid.UUID `json:"passengerIds"`
}
