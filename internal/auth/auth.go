package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/imrishuroy/go-storefront/internal/storage"
)

const storageKey = "verveo_user"

// defaultDelay stands in for the network round-trip of a real auth backend.
const defaultDelay = 800 * time.Millisecond

var (
	ErrMissingFields    = errors.New("all fields are required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

// User is the mock-authenticated account. No credentials are stored; any
// well-formed login succeeds.
type User struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Service implements mock authentication with simulated latency. The current
// user is persisted so a restart stays signed in.
type Service struct {
	mu      sync.Mutex
	user    *User
	store   *storage.Store
	delay   time.Duration
	nowFunc func() time.Time
}

// NewService hydrates the service from the store.
func NewService(store *storage.Store) *Service {
	s := &Service{store: store, delay: defaultDelay, nowFunc: time.Now}
	var u User
	store.Load(storageKey, &u)
	if u.ID != "" {
		s.user = &u
	}
	return s
}

// Login signs in with any non-empty email and password. The account name is
// derived from the email local part.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}
	return s.setUser(email, name), nil
}

// Signup creates a mock account. Passwords shorter than 6 characters are
// rejected; nothing else is checked.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.setUser(email, name), nil
}

// Logout clears the current user and its stored copy.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.store.Delete(storageKey)
}

// Current returns the signed-in user, if any.
func (s *Service) Current() (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

func (s *Service) setUser(email, name string) *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		JoinedAt: s.nowFunc(),
	}
	s.user = u
	s.store.Save(storageKey, u)
	out := *u
	return &out
}

// wait blocks for the simulated backend delay, honoring cancellation so an
// abandoned request does not hold the goroutine.
func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
