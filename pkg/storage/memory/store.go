package memory

import (
	"context"
	"sync"

	"github.com/artem13815/registration/pkg/registration"
)

// Store implements registration.Storage on a map keyed by login.
// Each Store is independent; construct a fresh one per test or process.
type Store struct {
	mu    sync.RWMutex
	users map[string]registration.User
}

func New() *Store {
	return &Store{users: make(map[string]registration.User)}
}

// Add inserts user, replacing any entry with the same login.
func (s *Store) Add(_ context.Context, user registration.User) error {
	s.mu.Lock()
	s.users[user.Login] = user.Clone()
	s.mu.Unlock()
	return nil
}

func (s *Store) Get(_ context.Context, login string) (registration.User, error) {
	s.mu.RLock()
	user, ok := s.users[login]
	s.mu.RUnlock()
	if !ok {
		return registration.User{}, registration.ErrNotFound
	}
	return user.Clone(), nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	clear(s.users)
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
