package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"solotrip/internal/infra"
	"solotrip/internal/models/db_models"
	"solotrip/internal/repositories"
)

type commentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) repositories.CommentRepository {
	return &commentRepository{col: db.Collection(infra.CommentsCollection)}
}

func (r *commentRepository) Insert(ctx context.Context, comment *db_models.Comment) error {
	comment.Init()
	_, err := r.col.InsertOne(ctx, comment)
	return err
}

func (r *commentRepository) ListByTrip(ctx context.Context, tripID string) ([]db_models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"tripId": tripID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := make([]db_models.Comment, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
