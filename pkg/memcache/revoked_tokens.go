// pkg/memcache/revoked_tokens.go
package mem

import (
	"context"
	"sync"
	"time"
)

// TokenDenylist remembers logged-out tokens until they would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = s.now().Add(ttl)
	s.sweepLocked()
	return nil
}

func (s *RevokedTokens) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiresAt, ok := s.data[token]
	if !ok || s.now().After(expiresAt) {
		return false, nil
	}
	return true, nil
}

// sweepLocked drops expired entries once the map grows; caller holds mu.
func (s *RevokedTokens) sweepLocked() {
	if len(s.data) < 1024 {
		return
	}
	now := s.now()
	for token, expiresAt := range s.data {
		if now.After(expiresAt) {
			delete(s.data, token)
		}
	}
}
