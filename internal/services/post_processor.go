package services

import (
	"fmt"
	"net/url"
	"strings"

	"solotrip/internal/models/db_models"
	"solotrip/internal/models/response_models"
)

const (
	stockImageURLFormat = "https://loremflickr.com/1200/800/%s,travel/all"
	mapsSearchURLPrefix = "https://www.google.com/maps/search/?api=1&query="
)

// PhotoURLBuilder turns a photo resource name into a fetchable media URL.
type PhotoURLBuilder interface {
	PhotoURL(photoName string) string
}

type PostProcessor struct {
	photos PhotoURLBuilder
}

func NewPostProcessor(photos PhotoURLBuilder) *PostProcessor {
	return &PostProcessor{photos: photos}
}

// EnrichItinerary returns a copy of it where every place carries an image and a maps link.
// Running it on its own output yields the same document.
func (p *PostProcessor) EnrichItinerary(it response_models.Itinerary, candidates []GroundingCandidate) response_models.Itinerary {
	out := it
	out.Plans = make([]db_models.DayPlan, len(it.Plans))

	for i, day := range it.Plans {
		enriched := day
		enriched.Places = make([]db_models.Place, len(day.Places))
		for j, place := range day.Places {
			enriched.Places[j] = p.enrichPlace(place, candidates)
		}
		out.Plans[i] = enriched
	}
	return out
}

func (p *PostProcessor) enrichPlace(place db_models.Place, candidates []GroundingCandidate) db_models.Place {
	query := encodeURIComponent(place.Name)

	if match := matchCandidate(place.Name, candidates); match != nil && len(match.Photos) > 0 {
		place.Image = p.photos.PhotoURL(match.Photos[0])
	} else {
		place.Image = fmt.Sprintf(stockImageURLFormat, strings.ReplaceAll(query, "%20", ","))
	}
	place.MapsURL = mapsSearchURLPrefix + query
	return place
}

// matchCandidate returns the first candidate whose name contains the place name, ignoring case.
// An empty name is contained in every name, so it takes the first candidate.
func matchCandidate(name string, candidates []GroundingCandidate) *GroundingCandidate {
	needle := strings.ToLower(name)
	for i := range candidates {
		if strings.Contains(strings.ToLower(candidates[i].Name), needle) {
			return &candidates[i]
		}
	}
	return nil
}

var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent matches the browser function of the same name.
func encodeURIComponent(s string) string {
	return uriComponentFixups.Replace(url.QueryEscape(s))
}
