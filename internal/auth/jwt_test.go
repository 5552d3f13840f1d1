package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret-key-at-least-32-chars!!"

func TestManager_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	m := NewManager(testSecret, "catalog-backend", time.Hour)
	userID := uuid.New()

	token, err := m.Generate(userID)
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Generate: empty token")
	}

	got, err := m.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("ValidateToken: unexpected error: %v", err)
	}
	if got != userID {
		t.Errorf("ValidateToken: got %v, want %v", got, userID)
	}
}

func TestManager_ValidateEmptyToken(t *testing.T) {
	t.Parallel()

	m := NewManager(testSecret, "catalog-backend", time.Hour)

	_, err := m.ValidateToken(context.Background(), "")
	if err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestManager_ValidateGarbageToken(t *testing.T) {
	t.Parallel()

	m := NewManager(testSecret, "catalog-backend", time.Hour)

	_, err := m.ValidateToken(context.Background(), "not.a.jwt")
	if err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestManager_ValidateExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewManager(testSecret, "catalog-backend", -time.Minute)

	token, err := m.Generate(uuid.New())
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}

	_, err = m.ValidateToken(context.Background(), token)
	if err == nil {
		t.Fatal("expected error for expired token")
	}
	if !strings.Contains(err.Error(), "parse token") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestManager_ValidateWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewManager(testSecret, "catalog-backend", time.Hour)
	verifier := NewManager("another-secret-key-with-32-chars!!!", "catalog-backend", time.Hour)

	token, err := issuer.Generate(uuid.New())
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}

	if _, err := verifier.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestManager_ValidateWrongIssuer(t *testing.T) {
	t.Parallel()

	issuer := NewManager(testSecret, "someone-else", time.Hour)
	verifier := NewManager(testSecret, "catalog-backend", time.Hour)

	token, err := issuer.Generate(uuid.New())
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}

	if _, err := verifier.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}
