package services

import (
	"context"
	"time"

	"solotrip/pkg/logger"
	"solotrip/pkg/places"
)

const (
	groundingMaxResults = 20
	groundingTimeout    = 10 * time.Second
)

// GroundingCandidate is a real place offered to the model. It lives for one request only.
type GroundingCandidate struct {
	Name    string
	Address string
	Types   []string
	Rating  float64
	Photos  []string
}

// PlacesSearcher is the slice of the Places client the grounding fetcher needs.
type PlacesSearcher interface {
	SearchText(ctx context.Context, query string, maxResults int) ([]places.Place, error)
}

type GroundingServiceInterface interface {
	// Fetch never fails; any upstream problem yields an empty list.
	Fetch(ctx context.Context, destination string) []GroundingCandidate
}

type GroundingService struct {
	places PlacesSearcher
	log    *logger.Logger
}

func NewGroundingService(searcher PlacesSearcher, log *logger.Logger) GroundingServiceInterface {
	return &GroundingService{places: searcher, log: log.With("service", "GroundingService")}
}

func GroundingQuery(destination string) string {
	return "top tourist attractions and restaurants in " + destination
}

func (g *GroundingService) Fetch(ctx context.Context, destination string) []GroundingCandidate {
	if g.places == nil {
		return []GroundingCandidate{}
	}

	ctx, cancel := context.WithTimeout(ctx, groundingTimeout)
	defer cancel()

	found, err := g.places.SearchText(ctx, GroundingQuery(destination), groundingMaxResults)
	if err != nil {
		g.log.Warn("grounding unavailable, continuing without real places", "destination", destination, "error", err)
		return []GroundingCandidate{}
	}

	candidates := make([]GroundingCandidate, 0, len(found))
	for _, p := range found {
		photos := make([]string, 0, len(p.Photos))
		for _, ph := range p.Photos {
			if ph.Name != "" {
				photos = append(photos, ph.Name)
			}
		}
		candidates = append(candidates, GroundingCandidate{
			Name:    p.DisplayName.Text,
			Address: p.FormattedAddress,
			Types:   p.Types,
			Rating:  p.Rating,
			Photos:  photos,
		})
	}

	g.log.Debug("grounding fetched", "destination", destination, "candidates", len(candidates))
	return candidates
}
