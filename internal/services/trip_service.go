package services

import (
	"context"
	"strings"

	"solotrip/internal/models/db_models"
	"solotrip/internal/models/request_models"
	"solotrip/internal/models/response_models"
	"solotrip/internal/repositories"
	"solotrip/pkg/logger"
	"solotrip/pkg/utils"
)

type TripServiceInterface interface {
	Save(ctx context.Context, userID string, request request_models.SaveTripRequest) (*db_models.Trip, error)
	List(ctx context.Context, userID string) ([]db_models.Trip, error)
	Check(ctx context.Context, userID, city string, days int) (*response_models.TripCheckResponse, error)
	Delete(ctx context.Context, userID, tripID string) error
}

type TripService struct {
	trips repositories.TripRepository
	log   *logger.Logger
}

func NewTripService(trips repositories.TripRepository, log *logger.Logger) TripServiceInterface {
	return &TripService{trips: trips, log: log.With("service", "TripService")}
}

func (s *TripService) Save(ctx context.Context, userID string, request request_models.SaveTripRequest) (*db_models.Trip, error) {
	city := strings.TrimSpace(request.City)
	if city == "" {
		city = strings.TrimSpace(request.Destination)
	}
	if city == "" {
		return nil, &utils.ValidationError{Errors: []string{"City or destination is required"}}
	}

	destination := request.Destination
	if destination == "" {
		destination = city
	}
	currency := request.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	plans := request.Plans
	if plans == nil {
		plans = []db_models.DayPlan{}
	}

	trip := &db_models.Trip{
		UserID:        userID,
		City:          city,
		Country:       request.Country,
		Destination:   destination,
		Days:          request.Days,
		Budget:        request.Budget,
		EstimatedCost: request.EstimatedCost,
		Currency:      currency,
		Interests:     request.Interests,
		SafetyMode:    request.SafetyMode,
		Plans:         plans,
		AITip:         request.AITip,
	}
	if err := s.trips.Insert(ctx, trip); err != nil {
		s.log.Error("saving trip", "user_id", userID, "error", err)
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *TripService) List(ctx context.Context, userID string) ([]db_models.Trip, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("listing trips", "user_id", userID, "error", err)
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *TripService) Check(ctx context.Context, userID, city string, days int) (*response_models.TripCheckResponse, error) {
	trip, err := s.trips.FindByUserCityDays(ctx, userID, strings.TrimSpace(city), days)
	if err != nil {
		s.log.Error("checking trip", "user_id", userID, "error", err)
		return nil, utils.ErrDatabaseError
	}
	return &response_models.TripCheckResponse{Exists: trip != nil, Trip: trip}, nil
}

func (s *TripService) Delete(ctx context.Context, userID, tripID string) error {
	deleted, err := s.trips.DeleteByUser(ctx, userID, tripID)
	if err != nil {
		s.log.Error("deleting trip", "user_id", userID, "trip_id", tripID, "error", err)
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrTripNotFound
	}
	return nil
}
