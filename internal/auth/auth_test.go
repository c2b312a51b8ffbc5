package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/imrishuroy/go-storefront/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.Store) {
	t.Helper()
	store := storage.New(t.TempDir())
	s := NewService(store)
	s.delay = 0
	return s, store
}

func TestLogin_RequiresEmailAndPassword(t *testing.T) {
	s, _ := newTestService(t)

	if _, err := s.Login(context.Background(), "", "secret1"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := s.Login(context.Background(), "a@b.com", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestLogin_DerivesNameFromEmail(t *testing.T) {
	s, _ := newTestService(t)

	u, err := s.Login(context.Background(), "rishu@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Name != "rishu" {
		t.Fatalf("expected name derived from email, got %q", u.Name)
	}
	if u.ID == "" {
		t.Fatalf("expected generated user id")
	}
}

func TestSignup_RejectsShortPassword(t *testing.T) {
	s, _ := newTestService(t)

	if _, err := s.Signup(context.Background(), "Rishu", "a@b.com", "12345"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestService_PersistsAndClearsUser(t *testing.T) {
	s, store := newTestService(t)

	if _, ok := s.Current(); ok {
		t.Fatalf("expected no user initially")
	}

	u, err := s.Signup(context.Background(), "Rishu", "rishu@example.com", "secret1")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	// a fresh service over the same store stays signed in
	s2 := NewService(store)
	got, ok := s2.Current()
	if !ok || got.ID != u.ID {
		t.Fatalf("expected rehydrated user %q, got %+v ok=%v", u.ID, got, ok)
	}

	s2.Logout()
	s3 := NewService(store)
	if _, ok := s3.Current(); ok {
		t.Fatalf("expected logout to clear stored user")
	}
}

func TestLogin_HonorsCancellation(t *testing.T) {
	s, _ := newTestService(t)
	s.delay = defaultDelay

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Login(ctx, "a@b.com", "secret1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
