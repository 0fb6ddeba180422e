package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"solotrip/internal/config"
	"solotrip/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideConfig, provideLogger),
	fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Desugar()}
	}),
)

func provideConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(log.Sync))
	return log, nil
}
