package app

import (
	"strings"
	"testing"
)

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("pass1234")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 4 {
		t.Fatalf("expected 4 segments, got %d: %s", len(parts), hash)
	}
	if parts[0] != "pbkdf2_sha256" {
		t.Errorf("expected pbkdf2_sha256 algo, got %s", parts[0])
	}
	if parts[1] != "120000" {
		t.Errorf("expected 120000 rounds, got %s", parts[1])
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pass1234")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword("pass1234", hash) {
		t.Error("expected correct password to verify")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("expected wrong password to fail")
	}
}

func TestVerifyPassword_DistinctSalts(t *testing.T) {
	h1, _ := HashPassword("pass1234")
	h2, _ := HashPassword("pass1234")
	if h1 == h2 {
		t.Error("expected distinct hashes for the same password")
	}
	if !VerifyPassword("pass1234", h1) || !VerifyPassword("pass1234", h2) {
		t.Error("both hashes should verify")
	}
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"no separators", "plaintext"},
		{"wrong algo", "bcrypt$12$c2FsdA==$aGFzaA=="},
		{"bad rounds", "pbkdf2_sha256$abc$c2FsdA==$aGFzaA=="},
		{"zero rounds", "pbkdf2_sha256$0$c2FsdA==$aGFzaA=="},
		{"bad salt b64", "pbkdf2_sha256$120000$!!!$aGFzaA=="},
		{"bad hash b64", "pbkdf2_sha256$120000$c2FsdA==$!!!"},
		{"empty hash", "pbkdf2_sha256$120000$c2FsdA==$"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if VerifyPassword("pass1234", tc.stored) {
				t.Error("malformed credential must not verify")
			}
		})
	}
}
