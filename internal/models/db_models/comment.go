package db_models

type Comment struct {
	BaseModel `bson:",inline"`
	TripID    string `gorm:"type:varchar(64);index;not null" bson:"tripId" json:"tripId"`
	UserID    string `gorm:"type:varchar(36);not null" bson:"userId" json:"userId"`
	UserName  string `bson:"userName" json:"userName"`
	Text      string `gorm:"not null" bson:"text" json:"text"`
}
