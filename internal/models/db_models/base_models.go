package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" bson:"_id" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" bson:"createdAt" json:"createdAt"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	b.Init()
	return nil
}

// Init assigns an id and creation time when unset. Mongo repositories call it before inserting.
func (b *BaseModel) Init() {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
}
