package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/internal/domain/types"
	"github.com/dauletm/pickup-share/pkg/logger"
	wrap "github.com/dauletm/pickup-share/pkg/logger/wrapper"
	"github.com/dauletm/pickup-share/pkg/metrics"
	"github.com/dauletm/pickup-share/pkg/postgres"
	"github.com/dauletm/pickup-share/pkg/trm"
	"github.com/dauletm/pickup-share/pkg/uuid"
)

const serviceName = "pickup-share"

// insertAttempts bounds code generation retries on a unique violation.
const insertAttempts = 5

type Service struct {
	transfers  TransferRepo
	passengers PassengerRepo
	trm        trm.TxManager
	events     EventPublisher
	notifier   RosterNotifier

	logger logger.Logger
}

func New(transfers TransferRepo, passengers PassengerRepo, txm trm.TxManager, events EventPublisher, notifier RosterNotifier, logger logger.Logger) *Service {
	return &Service{
		transfers:  transfers,
		passengers: passengers,
		trm:        txm,
		events:     events,
		notifier:   notifier,
		logger:     logger,
	}
}

// Create issues a redeemable code referencing the given passenger ids.
// The id set is stored as-is: it is a snapshot, not validated against live
// rows, so sharing and deleting do not race.
func (s *Service) Create(ctx context.Context, passengerIDs []uuid.UUID, destination string) (string, error) {
	ctx = wrap.WithAction(ctx, "create_transfer")

	if len(passengerIDs) == 0 {
		return "", wrap.Error(ctx, types.ErrEmptyPassengerList)
	}

	var code string
	for attempt := 0; attempt < insertAttempts; attempt++ {
		generated, err := generateCode()
		if err != nil {
			return "", wrap.Error(ctx, fmt.Errorf("could not generate transfer code: %w", err))
		}

		t := &models.Transfer{
			Code:         generated,
			PassengerIDs: passengerIDs,
			Destination:  destination,
		}

		err = s.transfers.Insert(ctx, t)
		if err == nil {
			code = generated
			break
		}
		if postgres.IsUniqueViolation(err) {
			s.logger.Warn(wrap.WithTransferCode(ctx, generated), "transfer code collision, regenerating")
			continue
		}
		return "", wrap.Error(ctx, fmt.Errorf("could not insert transfer: %w", err))
	}
	if code == "" {
		return "", wrap.Error(ctx, types.ErrCodeCollision)
	}

	metrics.TransfersCreatedTotal.WithLabelValues(serviceName).Inc()

	if s.events != nil {
		if err := s.events.PublishTransferCreated(ctx, models.TransferCreatedMessage{
			Code:           code,
			Destination:    destination,
			PassengerCount: len(passengerIDs),
			Timestamp:      time.Now(),
		}); err != nil {
			s.logger.Warn(wrap.ErrorCtx(ctx, err), "failed to publish transfer created event", "err", err.Error())
		}
	}

	return code, nil
}

// Redeem consumes a code exactly once and copies the referenced passengers
// to newOwner. The conditional delete and the copies run in one transaction:
// of two concurrent redemptions only one sees the row, and a failure during
// the copy rolls the delete back so the code stays redeemable.
func (s *Service) Redeem(ctx context.Context, code, newOwner string) (*models.RedeemResult, error) {
	ctx = wrap.WithAction(wrap.WithTransferCode(wrap.WithOwnerID(ctx, newOwner), code), "redeem_transfer")

	var result *models.RedeemResult

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		ids, destination, found, err := s.transfers.DeleteReturning(ctx, code)
		if err != nil {
			return wrap.Error(ctx, fmt.Errorf("could not consume transfer: %w", err))
		}
		if !found {
			return wrap.Error(ctx, types.ErrTransferNotFound)
		}

		// Ids that no longer resolve to live rows are skipped silently.
		sources, err := s.passengers.GetByIDs(ctx, ids)
		if err != nil {
			return wrap.Error(ctx, fmt.Errorf("could not load referenced passengers: %w", err))
		}

		newIDs := make([]uuid.UUID, 0, len(sources))
		for _, src := range sources {
			dup := src.Copy(newOwner)
			dup.ID, err = uuid.New()
			if err != nil {
				return wrap.Error(ctx, fmt.Errorf("could not generate passenger id: %w", err))
			}

			if _, err := s.passengers.Insert(ctx, &dup); err != nil {
				return wrap.Error(ctx, fmt.Errorf("could not copy passenger: %w", err))
			}
			newIDs = append(newIDs, dup.ID)
		}

		result = &models.RedeemResult{
			Destination:  destination,
			PassengerIDs: newIDs,
		}
		return nil
	})

	if err != nil {
		status := "error"
		if errors.Is(err, types.ErrTransferNotFound) {
			status = "not_found"
		}
		metrics.TransfersRedeemedTotal.WithLabelValues(serviceName, status).Inc()
		return nil, err
	}

	metrics.TransfersRedeemedTotal.WithLabelValues(serviceName, "success").Inc()

	if s.events != nil {
		if err := s.events.PublishTransferRedeemed(ctx, models.TransferRedeemedMessage{
			Code:         code,
			Destination:  result.Destination,
			NewOwnerID:   newOwner,
			PassengerIDs: result.PassengerIDs,
			Timestamp:    time.Now(),
		}); err != nil {
			s.logger.Warn(wrap.ErrorCtx(ctx, err), "failed to publish transfer redeemed event", "err", err.Error())
		}
	}

	if s.notifier != nil {
		s.notifier.NotifyRosterChanged(ctx, newOwner, "passengers_imported", result.PassengerIDs)
	}

	return result, nil
}
