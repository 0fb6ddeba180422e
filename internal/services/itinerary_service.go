package services

import (
	"context"
	"time"

	"solotrip/internal/models/db_models"
	"solotrip/internal/models/response_models"
	"solotrip/internal/repositories"
	"solotrip/pkg/logger"
	"solotrip/pkg/utils"
)

const (
	DefaultCurrency     = "₹"
	GeneratedTripOrigin = "Verified"
)

type ItineraryServiceInterface interface {
	// GenerateTrip validates body, runs the generation pipeline and stores the result for userID.
	GenerateTrip(ctx context.Context, userID string, body map[string]any) (*db_models.Trip, error)
}

type ItineraryService struct {
	grounding  GroundingServiceInterface
	generation GenerationServiceInterface
	post       *PostProcessor
	trips      repositories.TripRepository
	timeout    time.Duration
	log        *logger.Logger
}

func NewItineraryService(
	grounding GroundingServiceInterface,
	generation GenerationServiceInterface,
	post *PostProcessor,
	trips repositories.TripRepository,
	timeout time.Duration,
	log *logger.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		grounding:  grounding,
		generation: generation,
		post:       post,
		trips:      trips,
		timeout:    timeout,
		log:        log.With("service", "ItineraryService"),
	}
}

func (s *ItineraryService) GenerateTrip(ctx context.Context, userID string, body map[string]any) (*db_models.Trip, error) {
	result := ValidateGenerateRequest(body)
	if !result.Valid {
		return nil, &utils.ValidationError{Errors: result.Errors}
	}
	req := ToGenerationRequest(body)

	start := time.Now()
	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	candidates := s.grounding.Fetch(genCtx, req.Destination)

	itinerary, err := s.generation.Generate(genCtx, req, candidates)
	if err != nil {
		return nil, err
	}

	enriched := s.post.EnrichItinerary(*itinerary, candidates)

	trip := tripFromItinerary(userID, req.Destination, req.Days, req.Budget, req.Interests, req.SafetyMode, enriched)
	if err := s.trips.Insert(ctx, trip); err != nil {
		payload := *trip
		payload.BaseModel = db_models.BaseModel{}
		return nil, &utils.PersistenceError{Payload: &payload, Err: err}
	}

	s.log.Info("trip generated",
		"trip_id", trip.ID,
		"user_id", userID,
		"destination", req.Destination,
		"grounded", len(candidates),
		"latency_ms", time.Since(start).Milliseconds())
	return trip, nil
}

func tripFromItinerary(userID, destination string, days int, budget float64, interests []string, safety bool, it response_models.Itinerary) *db_models.Trip {
	currency := it.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return &db_models.Trip{
		UserID:        userID,
		City:          destination,
		Country:       GeneratedTripOrigin,
		Destination:   destination,
		Days:          days,
		Budget:        budget,
		EstimatedCost: it.TotalCost,
		Currency:      currency,
		Interests:     interests,
		SafetyMode:    safety,
		Plans:         it.Plans,
		AITip:         it.AITip,
	}
}
