package db_models

import (
	"gorm.io/datatypes"
)

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Place is one stop of a day plan. Image and MapsURL are filled in after generation.
type Place struct {
	Name        string      `json:"name" bson:"name"`
	Category    string      `json:"category" bson:"category"`
	Description string      `json:"description" bson:"description"`
	Cost        float64     `json:"cost" bson:"cost"`
	Duration    float64     `json:"duration" bson:"duration"`
	ImageQuery  string      `json:"image_query,omitempty" bson:"imageQuery,omitempty"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
	Image       string      `json:"image,omitempty" bson:"image,omitempty"`
	MapsURL     string      `json:"mapsUrl,omitempty" bson:"mapsUrl,omitempty"`
}

type DayPlan struct {
	Day       int     `json:"day" bson:"day"`
	Theme     string  `json:"theme" bson:"theme"`
	Places    []Place `json:"places" bson:"places"`
	TotalCost float64 `json:"totalCost" bson:"totalCost"`
}

type Trip struct {
	BaseModel     `bson:",inline"`
	UserID        string                       `gorm:"type:varchar(36);index:idx_trip_owner_city_days" bson:"userId" json:"userId"`
	City          string                       `gorm:"not null;index:idx_trip_owner_city_days" bson:"city" json:"city"`
	Country       string                       `gorm:"not null" bson:"country" json:"country"`
	Destination   string                       `bson:"destination" json:"destination"`
	Days          int                          `gorm:"not null;index:idx_trip_owner_city_days" bson:"days" json:"days"`
	Budget        float64                      `bson:"budget" json:"budget"`
	EstimatedCost float64                      `bson:"estimatedCost" json:"estimatedCost"`
	Currency      string                       `bson:"currency" json:"currency"`
	Interests     datatypes.JSONSlice[string]  `bson:"interests" json:"interests"`
	SafetyMode    bool                         `bson:"safetyMode" json:"safetyMode"`
	Plans         datatypes.JSONSlice[DayPlan] `bson:"plans" json:"plans"`
	AITip         string                       `bson:"aiTip,omitempty" json:"aiTip,omitempty"`
}
