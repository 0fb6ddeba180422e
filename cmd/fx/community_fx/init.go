package community_fx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"solotrip/internal/config"
	"solotrip/internal/realtime"
	"solotrip/internal/services"
	"solotrip/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(
		services.NewTripService,
		services.NewExperienceService,
		provideHub,
		provideBus,
		realtime.NewNotifier,
		provideCommentPublisher,
		services.NewCommentService,
	),
	fx.Invoke(startNotifier),
)

func provideHub(lc fx.Lifecycle, log *logger.Logger) *realtime.Hub {
	hub := realtime.NewHub(log)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run()
			return nil
		},
		OnStop: func(context.Context) error {
			hub.Stop()
			return nil
		},
	})
	return hub
}

func provideBus(rdb *redis.Client, cfg *config.Config, log *logger.Logger) (realtime.Bus, error) {
	if rdb == nil {
		return realtime.NewLocalBus(), nil
	}
	return realtime.NewRedisBus(rdb, cfg.RedisChannel, log)
}

func provideCommentPublisher(n *realtime.Notifier) services.CommentPublisher {
	return n
}

func startNotifier(lc fx.Lifecycle, n *realtime.Notifier, bus realtime.Bus) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return n.Start(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return bus.Close()
		},
	})
}
