package account_fx

import (
	"go.uber.org/fx"

	"solotrip/internal/config"
	"solotrip/internal/services"
	"solotrip/pkg/utils"
)

var Module = fx.Provide(
	provideJWTManager, services.NewAccountService)

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
}
