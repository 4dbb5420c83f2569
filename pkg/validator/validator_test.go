package validator

import "testing"

func TestValidator_Valid(t *testing.T) {
	v := New()
	if !v.Valid() {
		t.Fatalf("fresh validator must be valid")
	}

	v.Check(true, "name", "must be provided")
	if !v.Valid() {
		t.Fatalf("passed check must not invalidate")
	}

	v.Check(false, "name", "must be provided")
	if v.Valid() {
		t.Fatalf("failed check must invalidate")
	}
	if got := v.Errors["name"]; got != "must be provided" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestValidator_FirstErrorWins(t *testing.T) {
	v := New()
	v.AddError("address", "first")
	v.AddError("address", "second")
	if got := v.Errors["address"]; got != "first" {
		t.Fatalf("expected first message to be kept, got %q", got)
	}
}
