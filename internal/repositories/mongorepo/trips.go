package mongorepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"solotrip/internal/infra"
	"solotrip/internal/models/db_models"
	"solotrip/internal/repositories"
)

type tripRepository struct {
	col *mongo.Collection
}

func NewTripRepository(db *mongo.Database) repositories.TripRepository {
	return &tripRepository{col: db.Collection(infra.TripsCollection)}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	trip.Init()
	_, err := r.col.InsertOne(ctx, trip)
	return err
}

func (r *tripRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Trip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trips := make([]db_models.Trip, 0)
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindByUserCityDays(ctx context.Context, userID, city string, days int) (*db_models.Trip, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var trip db_models.Trip
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "city": city, "days": days}, opts).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) DeleteByUser(ctx context.Context, userID, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
