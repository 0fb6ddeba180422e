package controllers

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"solotrip/internal/models/response_models"
	"solotrip/pkg/logger"
	"solotrip/pkg/places"
	"solotrip/pkg/utils"
)

const minAutocompleteInput = 3

type Autocompleter interface {
	Autocomplete(ctx context.Context, input string) ([]places.Suggestion, error)
}

type PlacesController struct {
	places Autocompleter
	log    *logger.Logger
}

func NewPlacesController(placesClient Autocompleter, log *logger.Logger) *PlacesController {
	return &PlacesController{places: placesClient, log: log}
}

func (p *PlacesController) Autocomplete(c *gin.Context) {
	input := strings.TrimSpace(c.Query("input"))
	if utf8.RuneCountInString(input) < minAutocompleteInput {
		utils.RespondSuccess(c, response_models.AutocompleteResponse{Suggestions: []response_models.Suggestion{}}, "")
		return
	}

	found, err := p.places.Autocomplete(c.Request.Context(), input)
	if err != nil {
		p.log.Error("autocomplete failed", "trace_id", c.GetString("trace_id"), "error", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch suggestions")
		return
	}

	out := make([]response_models.Suggestion, 0, len(found))
	for _, s := range found {
		out = append(out, response_models.Suggestion{PlaceID: s.PlaceID, Text: s.Text})
	}
	utils.RespondSuccess(c, response_models.AutocompleteResponse{Suggestions: out}, "")
}
