package repositories

import (
	"context"

	"gorm.io/gorm"

	"solotrip/internal/models/db_models"
)

type CommentRepository interface {
	Insert(ctx context.Context, comment *db_models.Comment) error
	ListByTrip(ctx context.Context, tripID string) ([]db_models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Insert(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByTrip(ctx context.Context, tripID string) ([]db_models.Comment, error) {
	comments := make([]db_models.Comment, 0)
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
