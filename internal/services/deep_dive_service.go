package services

import (
	"context"
	"strings"
	"time"

	"solotrip/internal/models/response_models"
	"solotrip/pkg/logger"
	"solotrip/pkg/utils"
)

const deepDiveCacheTTL = 24 * time.Hour

// DeepDiveCache stores generated deep dives keyed by country and interest.
type DeepDiveCache interface {
	Get(ctx context.Context, country, interest string) (*response_models.DeepDive, error)
	Set(ctx context.Context, country, interest string, dive *response_models.DeepDive, ttl time.Duration) error
}

type DeepDiveServiceInterface interface {
	Generate(ctx context.Context, country, interest string) (*response_models.DeepDive, error)
}

type DeepDiveService struct {
	generator Generator
	cache     DeepDiveCache
	log       *logger.Logger
}

// NewDeepDiveService accepts a nil cache.
func NewDeepDiveService(generator Generator, cache DeepDiveCache, log *logger.Logger) DeepDiveServiceInterface {
	return &DeepDiveService{generator: generator, cache: cache, log: log.With("service", "DeepDiveService")}
}

func (s *DeepDiveService) Generate(ctx context.Context, country, interest string) (*response_models.DeepDive, error) {
	country, interest = strings.TrimSpace(country), strings.TrimSpace(interest)
	if country == "" || interest == "" {
		return nil, utils.ErrInvalidInput
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, country, interest)
		if err != nil {
			s.log.Warn("deep dive cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	var dive response_models.DeepDive
	_, err := s.generator.Run(ctx, BuildDeepDivePrompt(country, interest), func(raw string) error {
		var candidate response_models.DeepDive
		if err := decodeStrict(raw, &candidate, "title"); err != nil {
			return err
		}
		dive = candidate
		return nil
	})
	if err != nil {
		return nil, exhaustedFrom(err, country, 0)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, country, interest, &dive, deepDiveCacheTTL); err != nil {
			s.log.Warn("deep dive cache write failed", "error", err)
		}
	}
	return &dive, nil
}
