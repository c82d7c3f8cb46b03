package users

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

var ErrEmailTaken = errors.New("email already registered")

// Store holds accounts in memory. Accounts created at runtime live
// until the process exits, like everything else here.
type Store struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by lowercased email
}

func NewStore() *Store {
	return &Store{users: make(map[string]*User)}
}

func (s *Store) Create(ctx context.Context, u *User) error {
	_ = ctx
	key := strings.ToLower(u.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[key]; exists {
		return ErrEmailTaken
	}
	cp := *u
	s.users[key] = &cp
	return nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (User, bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return User{}, false, nil
	}
	return *u, true, nil
}

func (s *Store) GetByPhone(ctx context.Context, phone string) (User, bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.PhoneE164 != "" && u.PhoneE164 == phone {
			return *u, true, nil
		}
	}
	return User{}, false, nil
}

func (s *Store) MarkEmailVerified(ctx context.Context, email string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[strings.ToLower(email)]; ok {
		now := time.Now()
		u.EmailVerifiedAt = &now
	}
	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, email string, hash []byte) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[strings.ToLower(email)]; ok {
		u.PasswordHash = hash
	}
	return nil
}
