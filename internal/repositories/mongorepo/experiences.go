package mongorepo

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"solotrip/internal/infra"
	"solotrip/internal/models/db_models"
	"solotrip/internal/repositories"
)

type experienceRepository struct {
	col *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) repositories.ExperienceRepository {
	return &experienceRepository{col: db.Collection(infra.ExperiencesCollection)}
}

func (r *experienceRepository) Insert(ctx context.Context, experience *db_models.Experience) error {
	experience.Init()
	_, err := r.col.InsertOne(ctx, experience)
	return err
}

func (r *experienceRepository) ListByLocation(ctx context.Context, location string) ([]db_models.Experience, error) {
	filter := bson.M{}
	if location != "" {
		filter["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(location), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	experiences := make([]db_models.Experience, 0)
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}
