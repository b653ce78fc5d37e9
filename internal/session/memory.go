package session

import (
	"sync"

	"github.com/qdryclean/qadmin/internal/domain/model"
)

// MemoryStore keeps the session in process memory only. Used by tests and
// ephemeral runs where persistence across restarts is not wanted.
type MemoryStore struct {
	mu      sync.RWMutex
	current model.Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Login replaces the session wholesale.
func (s *MemoryStore) Login(token string, user *model.UserProfile) error {
	if token == "" || user == nil {
		return ErrPartialSession
	}

	profile := *user
	s.mu.Lock()
	s.current = model.Session{Token: token, User: &profile}
	s.mu.Unlock()
	return nil
}

// Logout clears the session, reporting whether one was present.
func (s *MemoryStore) Logout() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current.Active() {
		return false, nil
	}
	s.current = model.Session{}
	return true, nil
}

// IsAuthenticated reports whether a token is held.
func (s *MemoryStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Active()
}

// CurrentUser returns a copy of the stored profile.
func (s *MemoryStore) CurrentUser() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current.User == nil {
		return nil
	}
	profile := *s.current.User
	return &profile
}

// Token returns the stored credential.
func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}
