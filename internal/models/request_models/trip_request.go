package request_models

import "solotrip/internal/models/db_models"

type SaveTripRequest struct {
	City          string              `json:"city"`
	Country       string              `json:"country"`
	Destination   string              `json:"destination"`
	Days          int                 `json:"days" binding:"required,min=1"`
	Budget        float64             `json:"budget"`
	EstimatedCost float64             `json:"estimatedCost"`
	Currency      string              `json:"currency"`
	Interests     []string            `json:"interests"`
	SafetyMode    bool                `json:"safetyMode"`
	Plans         []db_models.DayPlan `json:"plans"`
	AITip         string              `json:"aiTip"`
}

type CheckTripQuery struct {
	City string `form:"city" binding:"required"`
	Days int    `form:"days" binding:"required,min=1"`
}
