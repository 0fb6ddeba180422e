package infra

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"solotrip/pkg/logger"
)

const (
	TripsCollection       = "trips"
	UsersCollection       = "users"
	CommentsCollection    = "comments"
	ExperiencesCollection = "experiences"
)

func InitMongo(ctx context.Context, uri, database string, log *logger.Logger) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	db := client.Database(database)
	if err := ensureIndexes(ctx, db); err != nil {
		log.Warn("creating mongo indexes", "error", err)
	}

	log.Info("mongo connected", "database", database)
	return db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		UsersCollection: {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		TripsCollection: {
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		CommentsCollection: {
			Keys: bson.D{{Key: "tripId", Value: 1}, {Key: "createdAt", Value: 1}},
		},
		ExperiencesCollection: {
			Keys: bson.D{{Key: "date", Value: -1}},
		},
	}

	g, ctx := errgroup.WithContext(ctx)
	for collection, model := range indexes {
		g.Go(func() error {
			if _, err := db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
				return fmt.Errorf("index on %s: %w", collection, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func CloseMongo(ctx context.Context, db *mongo.Database, log *logger.Logger) {
	if err := db.Client().Disconnect(ctx); err != nil {
		log.Warn("closing mongo connection", "error", err)
		return
	}
	log.Info("mongo connection closed")
}
