package transfer

import (
	"context"

	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/pkg/uuid"
)

type TransferRepo interface {
	Insert(ctx context.Context, t *models.Transfer) error
	DeleteReturning(ctx context.Context, code string) (ids []uuid.UUID, destination string, found bool, err error)
}

type PassengerRepo interface {
	Insert(ctx context.Context, p *models.Passenger) (*models.Passenger, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Passenger, error)
}

type EventPublisher interface {
	PublishTransferCreated(ctx context.Context, msg models.TransferCreatedMessage) error
	PublishTransferRedeemed(ctx context.Context, msg models.TransferRedeemedMessage) error
}

type RosterNotifier interface {
	NotifyRosterChanged(ctx context.Context, ownerID, event string, passengerIDs []uuid.UUID)
}
