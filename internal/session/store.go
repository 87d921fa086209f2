// Package session holds the bearer token and user profile between
// invocations and decides the authenticated/unauthenticated state.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

// Deterministic key names for the two durable session entries. They
// match the keys the backend's other clients use, so a session written
// by one client is readable by another.
const (
	TokenKey = "bb_token"
	UserKey  = "bb_user"
)

// ErrKeyNotFound is returned by Storage implementations for absent keys.
var ErrKeyNotFound = errors.New("session key not found")

// Storage is the durable key/value port behind the session store. It
// exists so the store can be unit-tested without touching the real
// filesystem and swapped for any persistence backend.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store manages the current session: token, profile, and the
// authenticated/unauthenticated state derived from durable storage.
type Store struct {
	storage Storage

	mu    sync.RWMutex
	token string
	user  *model.User
}

// NewStore creates a session store over the given storage port and
// loads any persisted session. A corrupt persisted profile is treated
// as unauthenticated rather than an error.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	s.load()
	return s
}

func (s *Store) load() {
	token, err := s.storage.Get(TokenKey)
	if err != nil {
		return
	}
	raw, err := s.storage.Get(UserKey)
	if err != nil {
		return
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return
	}

	// Both entries present and parseable: authenticated.
	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
}

// Authenticated reports whether a complete session is loaded.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// Token returns the bearer token, or empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the stored profile, or nil when unauthenticated.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// UserID resolves the numeric user identifier required by user-scoped
// resource calls. It fails with ErrNoSession before any network call
// can be attempted when no session exists.
func (s *Store) UserID() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return 0, common.ErrNoSession
	}
	id, err := s.user.ID.Int64()
	if err != nil {
		return 0, fmt.Errorf("invalid user identifier: %w", err)
	}
	return id, nil
}

// SaveLogin persists a fresh session atomically: either both entries
// land in storage and the store transitions to authenticated, or
// neither does.
func (s *Store) SaveLogin(auth model.AuthResponse) error {
	if auth.Token == "" {
		return fmt.Errorf("%w: empty token in auth response", common.ErrParse)
	}

	profile, err := json.Marshal(auth.User)
	if err != nil {
		return fmt.Errorf("failed to serialize user profile: %w", err)
	}

	if err := s.storage.Set(TokenKey, auth.Token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.storage.Set(UserKey, string(profile)); err != nil {
		// Roll back the token so a half-written session never reads as
		// authenticated on the next start.
		_ = s.storage.Delete(TokenKey)
		return fmt.Errorf("failed to persist user profile: %w", err)
	}

	s.mu.Lock()
	s.token = auth.Token
	user := auth.User
	s.user = &user
	s.mu.Unlock()

	return nil
}

// Clear removes the persisted session and transitions to the
// unauthenticated state. It never calls the backend.
func (s *Store) Clear() error {
	errToken := s.storage.Delete(TokenKey)
	errUser := s.storage.Delete(UserKey)

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if errToken != nil && !errors.Is(errToken, ErrKeyNotFound) {
		return errToken
	}
	if errUser != nil && !errors.Is(errUser, ErrKeyNotFound) {
		return errUser
	}
	return nil
}
