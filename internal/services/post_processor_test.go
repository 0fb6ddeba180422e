package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solotrip/internal/models/db_models"
	"solotrip/internal/models/response_models"
	"solotrip/pkg/places"
)

func itineraryWith(names ...string) response_models.Itinerary {
	placesList := make([]db_models.Place, 0, len(names))
	for _, n := range names {
		placesList = append(placesList, db_models.Place{Name: n})
	}
	return response_models.Itinerary{
		Destination: "Varanasi",
		Days:        1,
		Plans:       []db_models.DayPlan{{Day: 1, Places: placesList}},
	}
}

func TestEnrichItinerary(t *testing.T) {
	candidates := []GroundingCandidate{
		{Name: "Manikarnika Ghat", Photos: nil},
		{Name: "Dashashwamedh Ghat Varanasi", Photos: []string{"places/g1/photos/a", "places/g1/photos/b"}},
		{Name: "Dashashwamedh Ghat Market", Photos: []string{"places/g2/photos/z"}},
	}
	pp := NewPostProcessor(places.NewClient("KEY"))

	in := itineraryWith("dashashwamedh ghat", "Manikarnika Ghat", "Blue Lassi Shop", "")
	out := pp.EnrichItinerary(in, candidates)
	got := out.Plans[0].Places

	t.Run("substring match uses first candidate photo", func(t *testing.T) {
		assert.Equal(t, "https://places.googleapis.com/v1/places/g1/photos/a/media?key=KEY&maxHeightPx=1000", got[0].Image)
	})

	t.Run("match without photos falls back to stock", func(t *testing.T) {
		assert.Equal(t, "https://loremflickr.com/1200/800/Manikarnika,Ghat,travel/all", got[1].Image)
	})

	t.Run("no match falls back to stock", func(t *testing.T) {
		assert.Equal(t, "https://loremflickr.com/1200/800/Blue,Lassi,Shop,travel/all", got[2].Image)
		assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Blue%20Lassi%20Shop", got[2].MapsURL)
	})

	t.Run("empty name takes first candidate, which has no photo", func(t *testing.T) {
		assert.Equal(t, "https://loremflickr.com/1200/800/,travel/all", got[3].Image)
	})

	t.Run("every place has a maps url and image", func(t *testing.T) {
		for _, p := range got {
			assert.NotEmpty(t, p.MapsURL)
			assert.NotEmpty(t, p.Image)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		assert.Empty(t, in.Plans[0].Places[0].Image)
		assert.Empty(t, in.Plans[0].Places[0].MapsURL)
	})

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, out, pp.EnrichItinerary(out, candidates))
	})
}

func TestEnrichItinerary_EmptyNameMatchesFirstCandidate(t *testing.T) {
	candidates := []GroundingCandidate{
		{Name: "Assi Ghat", Photos: []string{"places/assi/photos/1"}},
		{Name: "Tulsi Ghat", Photos: []string{"places/tulsi/photos/1"}},
	}
	out := NewPostProcessor(places.NewClient("KEY")).EnrichItinerary(itineraryWith(""), candidates)

	place := out.Plans[0].Places[0]
	assert.Equal(t, "https://places.googleapis.com/v1/places/assi/photos/1/media?key=KEY&maxHeightPx=1000", place.Image)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=", place.MapsURL)
}

func TestEncodeURIComponent(t *testing.T) {
	cases := map[string]string{
		"Dashashwamedh Ghat": "Dashashwamedh%20Ghat",
		"St. Mary's (Old)":   "St.%20Mary's%20(Old)",
		"A+B & C/D":          "A%2BB%20%26%20C%2FD",
		"Café ~ *!":          "Caf%C3%A9%20~%20*!",
	}
	for in, want := range cases {
		assert.Equal(t, want, encodeURIComponent(in), in)
	}
}

func TestEnrichItinerary_EmptyPlans(t *testing.T) {
	out := NewPostProcessor(places.NewClient("KEY")).EnrichItinerary(response_models.Itinerary{Destination: "X"}, nil)
	require.NotNil(t, out.Plans)
	assert.Empty(t, out.Plans)
}
