package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"solotrip/cmd/fx/account_fx"
	"solotrip/cmd/fx/community_fx"
	"solotrip/cmd/fx/config_fx"
	"solotrip/cmd/fx/controllers_fx"
	"solotrip/cmd/fx/db_fx"
	"solotrip/cmd/fx/itinerary_fx"
	"solotrip/cmd/fx/llm_fx"
	"solotrip/cmd/fx/memcache_fx"
	"solotrip/internal/config"
	"solotrip/pkg/logger"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		llm_fx.Module,
		itinerary_fx.Module,
		account_fx.Module,
		community_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *logger.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", "addr", srv.Addr, "env", cfg.AppEnv, "storage", cfg.StorageDriver)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
