package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solotrip/internal/models/request_models"
	"solotrip/internal/services"
	"solotrip/pkg/logger"
	"solotrip/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
	log         *logger.Logger
}

func NewTripController(tripService services.TripServiceInterface, log *logger.Logger) *TripController {
	return &TripController{tripService: tripService, log: log}
}

func (t *TripController) Save(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, _ := currentUser(c)
	trip, err := t.tripService.Save(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, trip, "Trip saved")
}

func (t *TripController) List(c *gin.Context) {
	userID, _ := currentUser(c)
	trips, err := t.tripService.List(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

func (t *TripController) Check(c *gin.Context) {
	var q request_models.CheckTripQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "City and days required")
		return
	}

	userID, _ := currentUser(c)
	resp, err := t.tripService.Check(c.Request.Context(), userID, q.City, q.Days)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

func (t *TripController) Delete(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userID, _ := currentUser(c)
	if err := t.tripService.Delete(c.Request.Context(), userID, tripID); err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted")
}
