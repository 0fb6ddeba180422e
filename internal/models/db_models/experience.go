package db_models

import "time"

const DefaultExperienceUser = "Traveler"

type Experience struct {
	BaseModel  `bson:",inline"`
	TripID     string    `gorm:"type:varchar(64);index" bson:"tripId,omitempty" json:"tripId,omitempty"`
	UserID     string    `gorm:"type:varchar(36);index" bson:"userId" json:"userId"`
	User       string    `bson:"user" json:"user"`
	Experience string    `gorm:"not null" bson:"experience" json:"experience"`
	Location   string    `gorm:"not null" bson:"location" json:"location"`
	Rating     *int      `bson:"rating,omitempty" json:"rating,omitempty"`
	Date       time.Time `gorm:"index" bson:"date" json:"date"`
}
