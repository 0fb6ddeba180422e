package mongorepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"solotrip/internal/infra"
	"solotrip/internal/models/db_models"
	"solotrip/internal/repositories"
)

type accountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) repositories.AccountRepository {
	return &accountRepository{col: db.Collection(infra.UsersCollection)}
}

func (r *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	account.Init()
	_, err := r.col.InsertOne(ctx, account)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicateKey
	}
	return err
}

func (r *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *accountRepository) findOne(ctx context.Context, filter bson.M) (*db_models.Account, error) {
	var account db_models.Account
	if err := r.col.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
