package passenger

import (
	"context"

	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/pkg/uuid"
)

type PassengerRepo interface {
	Insert(ctx context.Context, p *models.Passenger) (*models.Passenger, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Passenger, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Geocoder resolves a free-text address to coordinates.
// A not-found outcome is signalled with locationIQ.ErrLocationNotFound.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (lat, lng float64, err error)
}

// EventPublisher pushes lifecycle events to the message broker.
type EventPublisher interface {
	PublishPassengerCreated(ctx context.Context, msg models.PassengerCreatedMessage) error
}

// RosterNotifier pushes roster-changed events to a connected driver.
type RosterNotifier interface {
	NotifyRosterChanged(ctx context.Context, ownerID, event string, passengerIDs []uuid.UUID)
}
