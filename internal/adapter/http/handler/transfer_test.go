package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/internal/domain/types"
	"github.com/dauletm/pickup-share/pkg/logger"
	"github.com/dauletm/pickup-share/pkg/uuid"
)

type fakeTransferService struct {
	transfers map[string]models.RedeemResult
	createErr error
	nextCode  string
}

func newFakeTransferService() *fakeTransferService {
	return &fakeTransferService{
		transfers: make(map[string]models.RedeemResult),
		nextCode:  "TR-TESTCODE",
	}
}

func (f *fakeTransferService) Create(ctx context.Context, passengerIDs []uuid.UUID, destination string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.transfers[f.nextCode] = models.RedeemResult{
		Destination:  destination,
		PassengerIDs: passengerIDs,
	}
	return f.nextCode, nil
}

func (f *fakeTransferService) Redeem(ctx context.Context, code, newOwner string) (*models.RedeemResult, error) {
	result, ok := f.transfers[code]
	if !ok {
		return nil, types.ErrTransferNotFound
	}
	delete(f.transfers, code)
	return &result, nil
}

func newTestTransferHandler(svc TransferService) *Transfer {
	return NewTransfer(svc, logger.InitLogger("test", logger.LevelError))
}

func TestTransferShare(t *testing.T) {
	svc := newFakeTransferService()
	h := newTestTransferHandler(svc)

	id := newUUID(t)
	body := fmt.Sprintf(`{"passengerIds":[%q],"destination":"Dropoff Hub"}`, id.String())
	req := httptest.NewRequest(http.MethodPost, "/share", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Share(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Code != "TR-TESTCODE" {
		t.Errorf("code = %q, want TR-TESTCODE", resp.Code)
	}
}

func TestTransferShareValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty passenger list", `{"passengerIds":[],"destination":"somewhere"}`},
		{"missing destination", `{"passengerIds":["0c2f2906-7e80-4f3c-8a4c-2d18d1f3b853"]}`},
		{"malformed json", `{"passengerIds":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestTransferHandler(newFakeTransferService())

			req := httptest.NewRequest(http.MethodPost, "/share", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Share(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestTransferImport(t *testing.T) {
	svc := newFakeTransferService()
	h := newTestTransferHandler(svc)

	ids := []uuid.UUID{newUUID(t), newUUID(t)}
	code, err := svc.Create(context.Background(), ids, "Dropoff Hub")
	if err != nil {
		t.Fatal(err)
	}

	body := fmt.Sprintf(`{"code":%q,"ownerId":"driver-2"}`, code)
	req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Destination  string   `json:"destination"`
		PassengerIDs []string `json:"passengerIds"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Destination != "Dropoff Hub" {
		t.Errorf("destination = %q, want Dropoff Hub", resp.Destination)
	}
	if len(resp.PassengerIDs) != 2 {
		t.Errorf("got %d passenger ids, want 2", len(resp.PassengerIDs))
	}
}

func TestTransferImportUnknownCode(t *testing.T) {
	h := newTestTransferHandler(newFakeTransferService())

	req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(`{"code":"TR-NOPE1234","ownerId":"driver-2"}`))
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestTransferImportTwice(t *testing.T) {
	svc := newFakeTransferService()
	h := newTestTransferHandler(svc)

	code, err := svc.Create(context.Background(), []uuid.UUID{newUUID(t)}, "Dropoff Hub")
	if err != nil {
		t.Fatal(err)
	}

	body := fmt.Sprintf(`{"code":%q,"ownerId":"driver-2"}`, code)

	first := httptest.NewRecorder()
	h.Import(first, httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(body)))
	if first.Code != http.StatusOK {
		t.Fatalf("first import: status = %d, want %d", first.Code, http.StatusOK)
	}

	second := httptest.NewRecorder()
	h.Import(second, httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(body)))
	if second.Code != http.StatusNotFound {
		t.Fatalf("second import: status = %d, want %d", second.Code, http.StatusNotFound)
	}
}

func TestTransferImportValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing code", `{"ownerId":"driver-2"}`},
		{"missing owner", `{"code":"TR-TESTCODE"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestTransferHandler(newFakeTransferService())

			req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Import(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}
