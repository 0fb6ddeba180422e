package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solotrip/internal/services"
	"solotrip/pkg/logger"
	"solotrip/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	deepDiveService  services.DeepDiveServiceInterface
	log              *logger.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, deepDiveService services.DeepDiveServiceInterface, log *logger.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		deepDiveService:  deepDiveService,
		log:              log,
	}
}

// Generate godoc
// @Summary Generate and store an itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/itinerary/generate [post]
func (i *ItineraryController) Generate(c *gin.Context) {
	// The body stays untyped so the validator can report every problem at once.
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, _ := currentUser(c)
	trip, err := i.itineraryService.GenerateTrip(c.Request.Context(), userID, body)
	if err != nil {
		utils.HandleServiceError(c, i.log, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, trip, "Itinerary generated")
}

// DeepDive godoc
// @Summary Cultural deep dive for a country and interest
// @Tags Itinerary
// @Produce json
// @Param country query string true "Country"
// @Param interest query string true "Interest"
// @Success 200 {object} utils.APIResponse
// @Router /api/itinerary/deep-dive [get]
func (i *ItineraryController) DeepDive(c *gin.Context) {
	country, interest := c.Query("country"), c.Query("interest")

	dive, err := i.deepDiveService.Generate(c.Request.Context(), country, interest)
	switch {
	case errors.Is(err, utils.ErrInvalidInput):
		utils.RespondError(c, http.StatusBadRequest, "Country and Interest required")
		return
	case err != nil:
		i.log.Error("deep dive failed", "trace_id", c.GetString("trace_id"), "country", country, "error", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to generate deep dive")
		return
	}

	utils.RespondSuccess(c, dive, "Deep dive generated")
}
