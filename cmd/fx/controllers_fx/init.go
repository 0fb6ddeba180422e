package controllers_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"solotrip/internal/api"
	"solotrip/internal/api/controllers"
	"solotrip/internal/config"
	"solotrip/internal/realtime"
	"solotrip/internal/services"
	"solotrip/pkg/logger"
	mem "solotrip/pkg/memcache"
	"solotrip/pkg/places"
	"solotrip/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewCommunityController),
	fx.Provide(providePlacesController),
	fx.Provide(provideSocketController),
	fx.Provide(provideRouter),
)

func providePlacesController(client *places.Client, log *logger.Logger) *controllers.PlacesController {
	return controllers.NewPlacesController(client, log)
}

func provideSocketController(hub *realtime.Hub, comments services.CommentServiceInterface, cfg *config.Config, log *logger.Logger) *controllers.SocketController {
	return controllers.NewSocketController(hub, comments, cfg.ClientOrigin, log)
}

type routerIn struct {
	fx.In

	Config    *config.Config
	JWT       *utils.JWTManager
	Denylist  mem.TokenDenylist
	Log       *logger.Logger
	Health    *controllers.HealthController
	Account   *controllers.AccountController
	Itinerary *controllers.ItineraryController
	Trips     *controllers.TripController
	Community *controllers.CommunityController
	Places    *controllers.PlacesController
	Socket    *controllers.SocketController
}

func provideRouter(in routerIn) *gin.Engine {
	if in.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(api.RouterParams{
		ClientOrigin: in.Config.ClientOrigin,
		JWT:          in.JWT,
		Denylist:     in.Denylist,
		Log:          in.Log,
		Health:       in.Health,
		Account:      in.Account,
		Itinerary:    in.Itinerary,
		Trips:        in.Trips,
		Community:    in.Community,
		Places:       in.Places,
		Socket:       in.Socket,
	})
}
