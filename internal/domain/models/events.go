package models

import (
	"time"

	"github.com/dauletm/pickup-share/pkg/uuid"
)

// RabbitMQ message: published to <transfer_topic> with key passenger.created
type PassengerCreatedMessage struct {
	PassengerID uuid.UUID `json:"passenger_id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Timestamp   time.Time `json:"timestamp"`
}

// RabbitMQ message: published to <transfer_topic> with key transfer.created
type TransferCreatedMessage struct {
	Code           string    `json:"code"`
	Destination    string    `json:"destination"`
	PassengerCount int       `json:"passenger_count"`
	Timestamp      time.Time `json:"timestamp"`
}

// RabbitMQ message: published to <transfer_topic> with key transfer.redeemed
type TransferRedeemedMessage struct {
	Code         string      `json:"code"`
	Destination  string      `json:"destination"`
	NewOwnerID   string      `json:"new_owner_id"`
	PassengerIDs []uuid.UUID `json:"passenger_ids"`
	Timestamp    time.Time   `json:"timestamp"`
}
