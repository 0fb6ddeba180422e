package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"solotrip/internal/models/response_models"
)

// DeepDiveCache keeps generated cultural deep dives in Redis.
type DeepDiveCache struct {
	client *redis.Client
}

func NewDeepDiveCache(client *redis.Client) *DeepDiveCache {
	return &DeepDiveCache{client: client}
}

func deepDiveKey(country, interest string) string {
	return "deepdive:" + strings.ToLower(strings.TrimSpace(country)) + ":" + strings.ToLower(strings.TrimSpace(interest))
}

// Get returns nil, nil on a cache miss.
func (c *DeepDiveCache) Get(ctx context.Context, country, interest string) (*response_models.DeepDive, error) {
	val, err := c.client.Get(ctx, deepDiveKey(country, interest)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for %s/%s: %w", country, interest, err)
	}

	var dive response_models.DeepDive
	if err := json.Unmarshal([]byte(val), &dive); err != nil {
		return nil, fmt.Errorf("unmarshaling cached deep dive for %s/%s: %w", country, interest, err)
	}
	return &dive, nil
}

func (c *DeepDiveCache) Set(ctx context.Context, country, interest string, dive *response_models.DeepDive, ttl time.Duration) error {
	if dive == nil {
		return nil
	}

	b, err := json.Marshal(dive)
	if err != nil {
		return fmt.Errorf("marshaling deep dive for %s/%s: %w", country, interest, err)
	}

	if err := c.client.Set(ctx, deepDiveKey(country, interest), b, ttl).Err(); err != nil {
		return fmt.Errorf("cache set for %s/%s: %w", country, interest, err)
	}
	return nil
}
