package memcache_fx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"solotrip/internal/cache"
	"solotrip/internal/config"
	"solotrip/internal/infra"
	"solotrip/internal/services"
	"solotrip/pkg/logger"
	mem "solotrip/pkg/memcache"
)

var Module = fx.Provide(provideRedis, provideDenylist, provideDeepDiveCache)

// provideRedis returns a nil client when REDIS_URL is unset.
func provideRedis(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		log.Info("REDIS_URL not set, using in-process token denylist and comment bus")
		return nil, nil
	}
	rdb, err := infra.ConnectRedis(context.Background(), cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(rdb.Close))
	return rdb, nil
}

func provideDenylist(rdb *redis.Client) mem.TokenDenylist {
	if rdb == nil {
		return mem.NewRevokedTokens()
	}
	return mem.NewRedisRevokedTokens(rdb)
}

func provideDeepDiveCache(rdb *redis.Client) services.DeepDiveCache {
	if rdb == nil {
		return nil
	}
	return cache.NewDeepDiveCache(rdb)
}
