package memory

import (
	"context"
	"sync"
	"time"

	"restaurant-orders/internal/domains/identity/ports"
)

var _ ports.TokenStore = (*TokenStore)(nil)

type tokenRecord struct {
	email     string
	expiresAt time.Time
}

// TokenStore is an in-memory bearer-token store with TTL handling.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]tokenRecord
	now    func() time.Time
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: map[string]tokenRecord{},
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source, for tests.
func (s *TokenStore) WithClock(now func() time.Time) *TokenStore {
	s.now = now
	return s
}

func (s *TokenStore) Save(_ context.Context, token, email string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = tokenRecord{email: email, expiresAt: expiresAt}
	return nil
}

func (s *TokenStore) Lookup(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	record, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok || s.now().After(record.expiresAt) {
		return "", ports.ErrInvalidToken
	}
	return record.email, nil
}

func (s *TokenStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

func (s *TokenStore) PurgeExpired(_ context.Context) int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for token, record := range s.tokens {
		if now.After(record.expiresAt) {
			delete(s.tokens, token)
			purged++
		}
	}
	return purged
}
