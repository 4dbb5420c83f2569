package transfer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/internal/domain/types"
	"github.com/dauletm/pickup-share/pkg/logger"
	"github.com/dauletm/pickup-share/pkg/uuid"
)

type fakeTransferRepo struct {
	transfers map[string]models.Transfer
	insertErr error
}

func newFakeTransferRepo() *fakeTransferRepo {
	return &fakeTransferRepo{transfers: make(map[string]models.Transfer)}
}

func (r *fakeTransferRepo) Insert(ctx context.Context, t *models.Transfer) error {
	if r.insertErr != nil {
		err := r.insertErr
		r.insertErr = nil
		return err
	}
	t.CreatedAt = time.Now()
	r.transfers[t.Code] = *t
	return nil
}

func (r *fakeTransferRepo) DeleteReturning(ctx context.Context, code string) ([]uuid.UUID, string, bool, error) {
	t, ok := r.transfers[code]
	if !ok {
		return nil, "", false, nil
	}
	delete(r.transfers, code)
	return t.PassengerIDs, t.Destination, true, nil
}

type fakePassengerRepo struct {
	rows map[uuid.UUID]models.Passenger
}

func newFakePassengerRepo() *fakePassengerRepo {
	return &fakePassengerRepo{rows: make(map[uuid.UUID]models.Passenger)}
}

func (r *fakePassengerRepo) Insert(ctx context.Context, p *models.Passenger) (*models.Passenger, error) {
	p.CreatedAt = time.Now()
	r.rows[p.ID] = *p
	return p, nil
}

func (r *fakePassengerRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Passenger, error) {
	out := []models.Passenger{}
	for _, id := range ids {
		if p, ok := r.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// passthroughTx runs the function directly, standing in for a real transaction.
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func setupService() (*Service, *fakeTransferRepo, *fakePassengerRepo) {
	transfers := newFakeTransferRepo()
	passengers := newFakePassengerRepo()
	log := logger.InitLogger("test", logger.LevelError)
	return New(transfers, passengers, passthroughTx{}, nil, nil, log), transfers, passengers
}

func seedPassenger(r *fakePassengerRepo, owner, name string) uuid.UUID {
	id, _ := uuid.New()
	r.rows[id] = models.Passenger{
		ID:        id,
		OwnerID:   owner,
		Name:      name,
		Address:   "Main St 1",
		Latitude:  32.05,
		Longitude: 34.78,
		Type:      models.TypeNewPickup,
	}
	return id
}

func TestCreate_EmptyIDList(t *testing.T) {
	svc, _, _ := setupService()

	_, err := svc.Create(context.Background(), nil, "Airport")
	if !errors.Is(err, types.ErrEmptyPassengerList) {
		t.Fatalf("expected ErrEmptyPassengerList, got %v", err)
	}
}

func TestCreate_CodeFormat(t *testing.T) {
	svc, transfers, passengers := setupService()
	id := seedPassenger(passengers, "u1", "Dana")

	code, err := svc.Create(context.Background(), []uuid.UUID{id}, "Airport")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !strings.HasPrefix(code, CodePrefix) {
		t.Errorf("expected %q prefix, got %q", CodePrefix, code)
	}
	if len(code) != len(CodePrefix)+codeLength {
		t.Errorf("unexpected code length: %q", code)
	}
	if _, ok := transfers.transfers[code]; !ok {
		t.Errorf("transfer was not persisted")
	}
}

func TestCreate_SnapshotKeepsDanglingIDs(t *testing.T) {
	svc, transfers, _ := setupService()

	// Referenced ids need not resolve to live rows at share time.
	id, _ := uuid.New()
	code, err := svc.Create(context.Background(), []uuid.UUID{id}, "Airport")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored := transfers.transfers[code]
	if len(stored.PassengerIDs) != 1 || stored.PassengerIDs[0] != id {
		t.Fatalf("expected the id snapshot to be stored verbatim")
	}
}

func TestRedeem_CopiesUnderNewOwner(t *testing.T) {
	svc, _, passengers := setupService()
	ctx := context.Background()

	srcID := seedPassenger(passengers, "u1", "Dana")
	code, err := svc.Create(ctx, []uuid.UUID{srcID}, "Airport")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	result, err := svc.Redeem(ctx, code, "u2")
	if err != nil {
		t.Fatalf("Redeem failed: %v", err)
	}

	if result.Destination != "Airport" {
		t.Errorf("expected destination Airport, got %q", result.Destination)
	}
	if len(result.PassengerIDs) != 1 {
		t.Fatalf("expected 1 new passenger id, got %d", len(result.PassengerIDs))
	}

	newID := result.PassengerIDs[0]
	if newID == srcID {
		t.Error("copy must get a fresh identifier")
	}

	src := passengers.rows[srcID]
	dup := passengers.rows[newID]
	if dup.OwnerID != "u2" {
		t.Errorf("copy owner: got %q want u2", dup.OwnerID)
	}
	if src.OwnerID != "u1" {
		t.Errorf("original owner must be untouched, got %q", src.OwnerID)
	}
	if dup.Name != src.Name || dup.Address != src.Address ||
		dup.Latitude != src.Latitude || dup.Longitude != src.Longitude || dup.Type != src.Type {
		t.Errorf("copy must duplicate name/address/coordinates/type: %+v vs %+v", dup, src)
	}
}

func TestRedeem_UnknownCode(t *testing.T) {
	svc, _, passengers := setupService()

	_, err := svc.Redeem(context.Background(), "TR-UNKNOWN1", "u2")
	if !errors.Is(err, types.ErrTransferNotFound) {
		t.Fatalf("expected ErrTransferNotFound, got %v", err)
	}
	if len(passengers.rows) != 0 {
		t.Fatalf("failed redeem must not create passengers")
	}
}

func TestRedeem_SecondCallFails(t *testing.T) {
	svc, _, passengers := setupService()
	ctx := context.Background()

	srcID := seedPassenger(passengers, "u1", "Dana")
	code, _ := svc.Create(ctx, []uuid.UUID{srcID}, "Airport")

	if _, err := svc.Redeem(ctx, code, "u2"); err != nil {
		t.Fatalf("first redeem failed: %v", err)
	}

	_, err := svc.Redeem(ctx, code, "u3")
	if !errors.Is(err, types.ErrTransferNotFound) {
		t.Fatalf("second redeem must report not found, got %v", err)
	}
}

func TestRedeem_SkipsDeletedPassengers(t *testing.T) {
	svc, _, passengers := setupService()
	ctx := context.Background()

	keptID := seedPassenger(passengers, "u1", "Dana")
	goneID := seedPassenger(passengers, "u1", "Gone")
	code, _ := svc.Create(ctx, []uuid.UUID{keptID, goneID}, "Airport")

	delete(passengers.rows, goneID)

	result, err := svc.Redeem(ctx, code, "u2")
	if err != nil {
		t.Fatalf("partial redeem must succeed: %v", err)
	}
	if len(result.PassengerIDs) != 1 {
		t.Fatalf("expected only the surviving passenger to be copied, got %d", len(result.PassengerIDs))
	}
	if passengers.rows[result.PassengerIDs[0]].Name != "Dana" {
		t.Errorf("wrong passenger copied")
	}
}
