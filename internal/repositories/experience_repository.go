package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"solotrip/internal/models/db_models"
)

type ExperienceRepository interface {
	Insert(ctx context.Context, experience *db_models.Experience) error
	// ListByLocation matches location case-insensitively as a substring; empty returns all.
	ListByLocation(ctx context.Context, location string) ([]db_models.Experience, error)
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Insert(ctx context.Context, experience *db_models.Experience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}

func (r *experienceRepository) ListByLocation(ctx context.Context, location string) ([]db_models.Experience, error) {
	experiences := make([]db_models.Experience, 0)
	q := r.db.WithContext(ctx).Order("date DESC")
	if location != "" {
		q = q.Where(`LOWER(location) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(location))+"%")
	}
	if err := q.Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
