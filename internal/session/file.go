package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/qdryclean/qadmin/internal/domain/model"
)

// FileStore persists the session as a single JSON document holding both
// entries, so token and profile survive restarts and can only be written or
// removed together. Writes go through a temp file plus rename, which keeps
// the on-disk state all-or-nothing even on crash.
type FileStore struct {
	path string

	mu      sync.RWMutex
	current model.Session
}

// NewFileStore opens the store at path, loading an existing session if one
// was persisted. A missing or corrupt file yields an empty session; corrupt
// state is discarded rather than half-trusted.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path must be provided")
	}

	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var persisted model.Session
	if err := json.Unmarshal(data, &persisted); err != nil {
		return s, nil
	}
	if persisted.Token == "" || persisted.User == nil {
		// Never resurrect a partial session.
		return s, nil
	}

	s.current = persisted
	return s, nil
}

// Login replaces the session wholesale and persists it.
func (s *FileStore) Login(token string, user *model.UserProfile) error {
	if token == "" || user == nil {
		return ErrPartialSession
	}

	profile := *user
	next := model.Session{Token: token, User: &profile}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(next); err != nil {
		return err
	}
	s.current = next
	return nil
}

// Logout clears the session and removes the persisted file. Idempotent.
func (s *FileStore) Logout() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current.Active() {
		return false, nil
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("remove session file: %w", err)
	}
	s.current = model.Session{}
	return true, nil
}

// IsAuthenticated reports whether a token is held.
func (s *FileStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Active()
}

// CurrentUser returns a copy of the stored profile.
func (s *FileStore) CurrentUser() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current.User == nil {
		return nil
	}
	profile := *s.current.User
	return &profile
}

// Token returns the stored credential.
func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

func (s *FileStore) write(sess model.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".qadmin-session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
