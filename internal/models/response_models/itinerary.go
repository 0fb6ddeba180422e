package response_models

import "solotrip/internal/models/db_models"

// Itinerary is the document an LLM provider must return for a generation request.
type Itinerary struct {
	Destination string              `json:"destination"`
	Days        int                 `json:"days"`
	Currency    string              `json:"currency,omitempty"`
	TotalCost   float64             `json:"totalCost"`
	Plans       []db_models.DayPlan `json:"plans"`
	AITip       string              `json:"aiTip,omitempty"`
}

type Landmark struct {
	Name         string `json:"name"`
	Significance string `json:"significance"`
}

type DeepDive struct {
	Title                 string     `json:"title"`
	HistoricalDescription string     `json:"historicalDescription"`
	Festivals             []string   `json:"festivals"`
	Traditions            []string   `json:"traditions"`
	Landmarks             []Landmark `json:"landmarks"`
	Attractions           []string   `json:"attractions"`
}
