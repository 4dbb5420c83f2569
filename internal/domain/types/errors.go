package types

import "errors"

var (
	ErrPassengerNotFound  = errors.New("passenger not found")
	ErrEmptyPassengerList = errors.New("passenger id list must not be empty")

	ErrTransferNotFound = errors.New("invalid or expired code")
	ErrCodeCollision    = errors.New("could not generate a unique transfer code")

	ErrNotFound = errors.New("requested item not found")
)
