package dto

import (
	"testing"

	"github.com/dauletm/pickup-share/pkg/uuid"
	"github.com/dauletm/pickup-share/pkg/validator"
)

func TestCreatePassengerRequest_Validate(t *testing.T) {
	tests := []struct {
		name  string
		req   CreatePassengerRequest
		valid bool
	}{
		{"complete", CreatePassengerRequest{Name: "Dana", Address: "Main St 1", OwnerID: "u1"}, true},
		{"missing name", CreatePassengerRequest{Address: "Main St 1", OwnerID: "u1"}, false},
		{"missing address", CreatePassengerRequest{Name: "Dana", OwnerID: "u1"}, false},
		{"missing owner", CreatePassengerRequest{Name: "Dana", Address: "Main St 1"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := validator.New()
			tc.req.Validate(v)
			if v.Valid() != tc.valid {
				t.Fatalf("Valid() = %v, want %v (errors: %v)", v.Valid(), tc.valid, v.Errors)
			}
		})
	}
}

func TestShareRequest_Validate(t *testing.T) {
	id, _ := uuid.New()

	v := validator.New()
	(&ShareRequest{PassengerIDs: []uuid.UUID{id}, Destination: "Airport"}).Validate(v)
	if !v.Valid() {
		t.Fatalf("expected valid share request, got %v", v.Errors)
	}

	v = validator.New()
	(&ShareRequest{Destination: "Airport"}).Validate(v)
	if v.Valid() {
		t.Fatal("empty passenger id list must fail validation")
	}
}

func TestImportRequest_Validate(t *testing.T) {
	v := validator.New()
	(&ImportRequest{Code: "TR-ABCD2345", OwnerID: "u2"}).Validate(v)
	if !v.Valid() {
		t.Fatalf("expected valid import request, got %v", v.Errors)
	}

	v = validator.New()
	(&ImportRequest{OwnerID: "u2"}).Validate(v)
	if v.Valid() {
		t.Fatal("missing code must fail validation")
	}
}
