package services

import (
	"context"
	"errors"
	"fmt"

	"solotrip/internal/models/request_models"
	"solotrip/internal/models/response_models"
	"solotrip/pkg/llm"
	"solotrip/pkg/logger"
	"solotrip/pkg/utils"
)

// Generator runs a prompt through an ordered set of providers; *llm.Chain implements it.
type Generator interface {
	Run(ctx context.Context, prompt string, accept llm.AcceptFunc) (string, error)
}

type GenerationServiceInterface interface {
	Generate(ctx context.Context, req request_models.GenerationRequest, candidates []GroundingCandidate) (*response_models.Itinerary, error)
}

type GenerationService struct {
	generator Generator
	log       *logger.Logger
}

func NewGenerationService(generator Generator, log *logger.Logger) GenerationServiceInterface {
	return &GenerationService{generator: generator, log: log.With("service", "GenerationService")}
}

func (s *GenerationService) Generate(ctx context.Context, req request_models.GenerationRequest, candidates []GroundingCandidate) (*response_models.Itinerary, error) {
	prompt := BuildItineraryPrompt(req, candidates)

	var itinerary *response_models.Itinerary
	provider, err := s.generator.Run(ctx, prompt, func(raw string) error {
		it, err := decodeItinerary(raw)
		if err != nil {
			return err
		}
		itinerary = it
		return nil
	})
	if err != nil {
		return nil, exhaustedFrom(err, req.Destination, req.Days)
	}

	s.log.Info("itinerary generated", "destination", req.Destination, "days", req.Days, "provider", provider, "plans", len(itinerary.Plans))
	return itinerary, nil
}

func decodeItinerary(raw string) (*response_models.Itinerary, error) {
	var it response_models.Itinerary
	if err := decodeStrict(raw, &it, "destination", "days", "plans"); err != nil {
		return nil, err
	}
	if len(it.Plans) == 0 {
		return nil, errors.New("plans is empty")
	}
	for i, day := range it.Plans {
		if day.Places == nil {
			return nil, fmt.Errorf("plans[%d].places missing", i)
		}
	}
	return &it, nil
}

func exhaustedFrom(err error, destination string, days int) error {
	exhausted := &utils.GenerationExhaustedError{Destination: destination, Days: days}

	var chainErr *llm.ExhaustedError
	if !errors.As(err, &chainErr) {
		exhausted.Attempts = []utils.ProviderFailure{{Provider: "chain", Error: err.Error()}}
		return exhausted
	}

	exhausted.Attempts = make([]utils.ProviderFailure, 0, len(chainErr.Failures))
	for _, f := range chainErr.Failures {
		exhausted.Attempts = append(exhausted.Attempts, utils.ProviderFailure{Provider: f.Provider, Error: f.Err.Error()})
	}
	return exhausted
}
