package passenger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/pkg/logger"
	"github.com/dauletm/pickup-share/pkg/uuid"
)

type fakePassengerRepo struct {
	created []models.Passenger
	deleted []uuid.UUID
}

func (r *fakePassengerRepo) Insert(ctx context.Context, p *models.Passenger) (*models.Passenger, error) {
	p.CreatedAt = time.Now()
	r.created = append(r.created, *p)
	return p, nil
}

func (r *fakePassengerRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Passenger, error) {
	// newest first, matching the store's ORDER BY created_at DESC
	out := []models.Passenger{}
	for i := len(r.created) - 1; i >= 0; i-- {
		if r.created[i].OwnerID == ownerID {
			out = append(out, r.created[i])
		}
	}
	return out, nil
}

func (r *fakePassengerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	for i, p := range r.created {
		if p.ID == id {
			r.created = append(r.created[:i], r.created[i+1:]...)
			break
		}
	}
	return nil
}

type fakeGeocoder struct {
	lat, lng float64
	err      error
}

func (g *fakeGeocoder) Resolve(ctx context.Context, address string) (float64, float64, error) {
	return g.lat, g.lng, g.err
}

func setupService(g Geocoder) (*Service, *fakePassengerRepo) {
	repo := &fakePassengerRepo{}
	log := logger.InitLogger("test", logger.LevelError)
	return New(repo, g, nil, nil, log), repo
}

func TestCreate_GeocodedPassenger(t *testing.T) {
	svc, _ := setupService(&fakeGeocoder{lat: 32.05, lng: 34.78})
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", "Dana", "Main St 1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if p.ID.IsZero() {
		t.Error("expected passenger id to be assigned")
	}
	if p.Latitude != 32.05 || p.Longitude != 34.78 {
		t.Errorf("unexpected coordinates: (%v, %v)", p.Latitude, p.Longitude)
	}
	if p.Type != models.TypeNewPickup {
		t.Errorf("expected type %q, got %q", models.TypeNewPickup, p.Type)
	}

	list, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Dana" || list[0].Address != "Main St 1" {
		t.Fatalf("created passenger missing from owner list: %+v", list)
	}
}

func TestCreate_FallbackOnGeocoderNotFound(t *testing.T) {
	svc, _ := setupService(&fakeGeocoder{err: errors.New("location not found")})

	p, err := svc.Create(context.Background(), "u1", "Dana", "nowhere at all")
	if err != nil {
		t.Fatalf("geocoder failure must not fail the request: %v", err)
	}

	if p.Latitude != DefaultLatitude || p.Longitude != DefaultLongitude {
		t.Errorf("expected fallback location, got (%v, %v)", p.Latitude, p.Longitude)
	}
	if p.Type != models.TypeAddressNotFound {
		t.Errorf("expected type %q, got %q", models.TypeAddressNotFound, p.Type)
	}
}

func TestList_ScopedToOwnerNewestFirst(t *testing.T) {
	svc, _ := setupService(&fakeGeocoder{lat: 1, lng: 2})
	ctx := context.Background()

	if _, err := svc.Create(ctx, "u1", "First", "A St"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, "u2", "Other", "B St"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, "u1", "Second", "C St"); err != nil {
		t.Fatal(err)
	}

	list, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 passengers for u1, got %d", len(list))
	}
	if list[0].Name != "Second" || list[1].Name != "First" {
		t.Errorf("expected newest first, got %s then %s", list[0].Name, list[1].Name)
	}
}

func TestDelete_UnknownIDIsNotAnError(t *testing.T) {
	svc, repo := setupService(&fakeGeocoder{})

	id, _ := uuid.New()
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("deleting a nonexistent passenger must not fail: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected delete to reach the repo")
	}
}
