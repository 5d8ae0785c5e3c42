package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/courtbook/server/internal/helpers"
	"github.com/courtbook/server/internal/models"
)

func newTestUserService(store *memStore) *UserService {
	return NewUserService(store, helpers.NewTokenManager("test-secret", time.Hour))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "owner@example.com", "Abcdef12", "Nino", "+995555123456", models.RoleCourtOwner)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Register returned empty token")
	}
	if user.Role != models.RoleCourtOwner {
		t.Errorf("Role = %s, want COURT_OWNER", user.Role)
	}
	if user.Password == "Abcdef12" {
		t.Error("password stored in plain text")
	}

	// Same email again is a conflict.
	_, _, err = svc.Register(ctx, "owner@example.com", "Abcdef12", "Nino", "", models.RoleCourtOwner)
	if !errors.Is(err, models.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	if _, _, err := svc.Authenticate(ctx, "owner@example.com", "Abcdef12"); err != nil {
		t.Errorf("Authenticate with correct password returned error: %v", err)
	}
	_, _, err = svc.Authenticate(ctx, "owner@example.com", "wrong")
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	_, _, err = svc.Authenticate(ctx, "nobody@example.com", "Abcdef12")
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store)

	user, _, err := svc.Register(context.Background(), "player@example.com", "Abcdef12", "Giorgi", "", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != models.RoleCustomer {
		t.Errorf("Role = %s, want CUSTOMER", user.Role)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store)

	for _, pw := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		_, _, err := svc.Register(context.Background(), "weak@example.com", pw, "Weak", "", "")
		if !errors.Is(err, models.ErrInvalidInput) {
			t.Errorf("password %q: expected ErrInvalidInput, got %v", pw, err)
		}
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store)

	_, _, err := svc.Register(context.Background(), "root@example.com", "Abcdef12", "Root", "", models.RoleAdmin)
	if err == nil {
		t.Error("expected error when registering with ADMIN role")
	}
}
