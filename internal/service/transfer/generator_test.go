package transfer

import (
	"strings"
	"testing"
)

func TestGenerateCode_Format(t *testing.T) {
	code, err := generateCode()
	if err != nil {
		t.Fatalf("generateCode failed: %v", err)
	}

	if !strings.HasPrefix(code, CodePrefix) {
		t.Fatalf("expected %q prefix, got %q", CodePrefix, code)
	}
	suffix := strings.TrimPrefix(code, CodePrefix)
	if len(suffix) != codeLength {
		t.Fatalf("expected %d character suffix, got %q", codeLength, suffix)
	}
	for _, ch := range suffix {
		if !strings.ContainsRune(codeAlphabet, ch) {
			t.Fatalf("character %q outside the code alphabet", ch)
		}
	}
}

func TestGenerateCode_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		code, err := generateCode()
		if err != nil {
			t.Fatalf("generateCode failed: %v", err)
		}
		if _, dup := seen[code]; dup {
			t.Fatalf("duplicate code %q within 1000 draws", code)
		}
		seen[code] = struct{}{}
	}
}
