package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solotrip/internal/models/response_models"
)

const Banner = "SoloTrip AI Production API Active."

type HealthController struct{}

func NewHealthController() *HealthController { return &HealthController{} }

func (h *HealthController) Root(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

func (h *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.HealthResponse{Status: "ok", Socket: true, Auth: true})
}
