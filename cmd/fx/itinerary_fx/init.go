package itinerary_fx

import (
	"go.uber.org/fx"

	"solotrip/internal/config"
	"solotrip/internal/repositories"
	"solotrip/internal/services"
	"solotrip/pkg/logger"
	"solotrip/pkg/places"
)

var Module = fx.Provide(
	providePlaces,
	provideGrounding,
	services.NewGenerationService,
	providePostProcessor,
	provideItineraryService,
	services.NewDeepDiveService,
)

func providePlaces(cfg *config.Config, log *logger.Logger) *places.Client {
	if cfg.PlacesAPIKey == "" {
		log.Warn("GOOGLE_PLACES_API_KEY not set, itineraries will not be grounded")
	}
	return places.NewClient(cfg.PlacesAPIKey)
}

func provideGrounding(client *places.Client, log *logger.Logger) services.GroundingServiceInterface {
	return services.NewGroundingService(client, log)
}

func providePostProcessor(client *places.Client) *services.PostProcessor {
	return services.NewPostProcessor(client)
}

func provideItineraryService(
	grounding services.GroundingServiceInterface,
	generation services.GenerationServiceInterface,
	post *services.PostProcessor,
	trips repositories.TripRepository,
	cfg *config.Config,
	log *logger.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(grounding, generation, post, trips, cfg.GenerateTimeout, log)
}
