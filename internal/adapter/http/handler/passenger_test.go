package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/pkg/logger"
	"github.com/dauletm/pickup-share/pkg/uuid"
)

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.New()
	if err != nil {
		t.Fatal(err)
	}
	return id
}

type fakePassengerService struct {
	created []models.Passenger
	deleted []uuid.UUID
	listErr error
}

func (f *fakePassengerService) Create(ctx context.Context, ownerID, name, address string) (*models.Passenger, error) {
	id, _ := uuid.New()
	p := models.Passenger{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Address:   address,
		Latitude:  51.1605,
		Longitude: 71.4704,
		Type:      models.TypeNewPickup,
	}
	f.created = append(f.created, p)
	return &p, nil
}

func (f *fakePassengerService) List(ctx context.Context, ownerID string) ([]models.Passenger, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Passenger
	for _, p := range f.created {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePassengerService) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestPassengerHandler(svc PassengerService) *Passenger {
	return NewPassenger(svc, logger.InitLogger("test", logger.LevelError))
}

func TestPassengerCreate(t *testing.T) {
	svc := &fakePassengerService{}
	h := newTestPassengerHandler(svc)

	body := `{"ownerId":"driver-1","name":"Aizhan","address":"Mangilik El 55"}`
	req := httptest.NewRequest(http.MethodPost, "/passengers", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var resp struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		OwnerID string `json:"ownerId"`
		Type    string `json:"type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Name != "Aizhan" || resp.OwnerID != "driver-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.ID == "" {
		t.Error("expected generated passenger id in response")
	}
	if len(svc.created) != 1 {
		t.Fatalf("created %d passengers, want 1", len(svc.created))
	}
}

func TestPassengerCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"ownerId":"driver-1","address":"somewhere"}`},
		{"missing address", `{"ownerId":"driver-1","name":"Aizhan"}`},
		{"missing owner", `{"name":"Aizhan","address":"somewhere"}`},
		{"malformed json", `{"name":`},
		{"unknown field", `{"ownerId":"driver-1","name":"A","address":"B","extra":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePassengerService{}
			h := newTestPassengerHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/passengers", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if len(svc.created) != 0 {
				t.Error("service should not be called on invalid input")
			}
		})
	}
}

func TestPassengerListRequiresOwner(t *testing.T) {
	h := newTestPassengerHandler(&fakePassengerService{})

	req := httptest.NewRequest(http.MethodGet, "/passengers", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestPassengerListScopedToOwner(t *testing.T) {
	svc := &fakePassengerService{}
	h := newTestPassengerHandler(svc)

	ctx := context.Background()
	if _, err := svc.Create(ctx, "driver-1", "Aizhan", "addr"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, "driver-2", "Bolat", "addr"); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/passengers?ownerId=driver-1", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp []struct {
		OwnerID string `json:"ownerId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("got %d passengers, want 1", len(resp))
	}
	if resp[0].OwnerID != "driver-1" {
		t.Errorf("ownerId = %q, want driver-1", resp[0].OwnerID)
	}
}

func TestPassengerDelete(t *testing.T) {
	svc := &fakePassengerService{}
	h := newTestPassengerHandler(svc)

	id := newUUID(t)
	req := httptest.NewRequest(http.MethodDelete, "/passengers/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != id {
		t.Errorf("deleted = %v, want [%s]", svc.deleted, id)
	}
}

func TestPassengerDeleteInvalidID(t *testing.T) {
	svc := &fakePassengerService{}
	h := newTestPassengerHandler(svc)

	req := httptest.NewRequest(http.MethodDelete, "/passengers/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(svc.deleted) != 0 {
		t.Error("service should not be called with invalid id")
	}
}
