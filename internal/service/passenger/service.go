package passenger

import (
	"context"
	"fmt"
	"time"

	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/pkg/logger"
	wrap "github.com/dauletm/pickup-share/pkg/logger/wrapper"
	"github.com/dauletm/pickup-share/pkg/metrics"
	"github.com/dauletm/pickup-share/pkg/uuid"
)

const serviceName = "pickup-share"

// Fallback pickup point used when the geocoder cannot resolve an address.
const (
	DefaultLatitude  = 32.0853
	DefaultLongitude = 34.7818
)

type Service struct {
	repo     PassengerRepo
	geocoder Geocoder
	events   EventPublisher
	notifier RosterNotifier

	logger logger.Logger
}

func New(repo PassengerRepo, geocoder Geocoder, events EventPublisher, notifier RosterNotifier, logger logger.Logger) *Service {
	return &Service{
		repo:     repo,
		geocoder: geocoder,
		events:   events,
		notifier: notifier,
		logger:   logger,
	}
}

// Create geocodes the address and persists a new passenger for the owner.
// Geocoder failures of any kind degrade to the fallback location with the
// "Address Not Found" label instead of failing the request.
func (s *Service) Create(ctx context.Context, ownerID, name, address string) (*models.Passenger, error) {
	ctx = wrap.WithAction(wrap.WithOwnerID(ctx, ownerID), "create_passenger")

	lat, lng, err := s.geocoder.Resolve(ctx, address)
	metrics.RecordGeocodeLookup(serviceName, err)

	pickupType := models.TypeNewPickup
	if err != nil {
		s.logger.Warn(wrap.ErrorCtx(ctx, err), "geocoding failed, using fallback location",
			"address", address,
			"err", err.Error(),
		)
		lat, lng = DefaultLatitude, DefaultLongitude
		pickupType = models.TypeAddressNotFound
	}

	id, err := uuid.New()
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not generate passenger id: %w", err))
	}

	p := &models.Passenger{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Address:   address,
		Latitude:  lat,
		Longitude: lng,
		Type:      pickupType,
	}

	created, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not insert passenger: %w", err))
	}

	metrics.PassengersCreatedTotal.WithLabelValues(serviceName).Inc()

	if s.events != nil {
		if err := s.events.PublishPassengerCreated(ctx, models.PassengerCreatedMessage{
			PassengerID: created.ID,
			OwnerID:     created.OwnerID,
			Name:        created.Name,
			Timestamp:   time.Now(),
		}); err != nil {
			s.logger.Warn(wrap.ErrorCtx(ctx, err), "failed to publish passenger created event", "err", err.Error())
		}
	}

	if s.notifier != nil {
		s.notifier.NotifyRosterChanged(ctx, created.OwnerID, "passenger_created", []uuid.UUID{created.ID})
	}

	return created, nil
}

// List returns the owner's passengers, most recently created first.
func (s *Service) List(ctx context.Context, ownerID string) ([]models.Passenger, error) {
	ctx = wrap.WithAction(wrap.WithOwnerID(ctx, ownerID), "list_passengers")

	passengers, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not list passengers: %w", err))
	}

	return passengers, nil
}

// Delete removes a passenger unconditionally. Unknown ids are not an error.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx = wrap.WithAction(ctx, "delete_passenger")

	if err := s.repo.Delete(ctx, id); err != nil {
		return wrap.Error(ctx, fmt.Errorf("could not delete passenger: %w", err))
	}

	metrics.PassengersDeletedTotal.WithLabelValues(serviceName).Inc()

	return nil
}
