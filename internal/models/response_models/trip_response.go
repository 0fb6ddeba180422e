package response_models

import "solotrip/internal/models/db_models"

type TripCheckResponse struct {
	Exists bool            `json:"exists"`
	Trip   *db_models.Trip `json:"trip"`
}

type Suggestion struct {
	PlaceID string `json:"placeId"`
	Text    string `json:"text"`
}

type AutocompleteResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Socket bool   `json:"socket"`
	Auth   bool   `json:"auth"`
}
