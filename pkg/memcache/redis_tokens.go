package mem

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "solotrip:revoked:"

// RedisRevokedTokens shares the denylist across instances; keys expire with the token.
type RedisRevokedTokens struct {
	rdb *redis.Client
}

func NewRedisRevokedTokens(rdb *redis.Client) *RedisRevokedTokens {
	return &RedisRevokedTokens{rdb: rdb}
}

func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedKeyPrefix + hex.EncodeToString(sum[:])
}

func (s *RedisRevokedTokens) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, revokedKey(token), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}

func (s *RedisRevokedTokens) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := s.rdb.Get(ctx, revokedKey(token)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking revoked token: %w", err)
	}
	return true, nil
}
