package services

import (
	"context"
	"strings"
	"time"

	"solotrip/internal/models/db_models"
	"solotrip/internal/models/request_models"
	"solotrip/internal/repositories"
	"solotrip/pkg/logger"
	"solotrip/pkg/utils"
)

type ExperienceServiceInterface interface {
	List(ctx context.Context, location string) ([]db_models.Experience, error)
	Add(ctx context.Context, userID, userName string, request request_models.AddExperienceRequest) (*db_models.Experience, error)
}

type ExperienceService struct {
	experiences repositories.ExperienceRepository
	log         *logger.Logger
	now         func() time.Time
}

func NewExperienceService(experiences repositories.ExperienceRepository, log *logger.Logger) ExperienceServiceInterface {
	return &ExperienceService{experiences: experiences, log: log.With("service", "ExperienceService"), now: time.Now}
}

func (s *ExperienceService) List(ctx context.Context, location string) ([]db_models.Experience, error) {
	items, err := s.experiences.ListByLocation(ctx, strings.TrimSpace(location))
	if err != nil {
		s.log.Error("listing experiences", "location", location, "error", err)
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *ExperienceService) Add(ctx context.Context, userID, userName string, request request_models.AddExperienceRequest) (*db_models.Experience, error) {
	user := strings.TrimSpace(userName)
	if user == "" {
		user = db_models.DefaultExperienceUser
	}

	experience := &db_models.Experience{
		TripID:     request.TripID,
		UserID:     userID,
		User:       user,
		Experience: strings.TrimSpace(request.Experience),
		Location:   strings.TrimSpace(request.Location),
		Rating:     request.Rating,
		Date:       s.now().UTC(),
	}
	if err := s.experiences.Insert(ctx, experience); err != nil {
		s.log.Error("adding experience", "user_id", userID, "error", err)
		return nil, utils.ErrDatabaseError
	}
	return experience, nil
}
