package api

import (
	"github.com/gin-gonic/gin"

	"solotrip/internal/api/controllers"
	"solotrip/pkg/logger"
	mem "solotrip/pkg/memcache"
	"solotrip/pkg/middleware"
	"solotrip/pkg/utils"
)

type RouterParams struct {
	ClientOrigin string
	JWT          *utils.JWTManager
	Denylist     mem.TokenDenylist
	Log          *logger.Logger

	Health    *controllers.HealthController
	Account   *controllers.AccountController
	Itinerary *controllers.ItineraryController
	Trips     *controllers.TripController
	Community *controllers.CommunityController
	Places    *controllers.PlacesController
	Socket    *controllers.SocketController
}

func NewRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(p.ClientOrigin))

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	requireAuth := middleware.JWTAuthMiddleware(p.JWT, p.Denylist)
	optionalAuth := middleware.OptionalAuth(p.JWT, p.Denylist)

	r.GET("/", p.Health.Root)
	r.GET("/health", p.Health.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", p.Account.Register)
	authGroup.POST("/login", p.Account.Login)
	authGroup.POST("/logout", requireAuth, p.Account.Logout)

	itineraryGroup := api.Group("/itinerary")
	itineraryGroup.POST("/generate", requireAuth, p.Itinerary.Generate)
	itineraryGroup.GET("/deep-dive", p.Itinerary.DeepDive)

	tripsGroup := api.Group("/trips", requireAuth)
	tripsGroup.POST("/save", p.Trips.Save)
	tripsGroup.GET("", p.Trips.List)
	tripsGroup.GET("/check", p.Trips.Check)
	tripsGroup.DELETE("/:id", p.Trips.Delete)

	experienceGroup := api.Group("/experiences")
	experienceGroup.GET("", p.Community.ListExperiences)
	experienceGroup.POST("/add", requireAuth, p.Community.AddExperience)

	commentGroup := api.Group("/comments")
	commentGroup.GET("/:tripId", p.Community.ListComments)
	commentGroup.POST("/:tripId", requireAuth, p.Community.CreateComment)

	api.GET("/places/autocomplete", p.Places.Autocomplete)

	r.GET("/ws/trips/:tripId", optionalAuth, p.Socket.Serve)
}
