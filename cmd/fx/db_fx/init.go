package db_fx

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"solotrip/internal/config"
	"solotrip/internal/infra"
	"solotrip/internal/repositories"
	"solotrip/internal/repositories/mongorepo"
	"solotrip/pkg/logger"
)

var Module = fx.Provide(provideRepositories)

type Repositories struct {
	fx.Out

	Accounts    repositories.AccountRepository
	Trips       repositories.TripRepository
	Comments    repositories.CommentRepository
	Experiences repositories.ExperienceRepository
}

func provideRepositories(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (Repositories, error) {
	if cfg.StorageDriver == config.StoragePostgres {
		db, err := infra.InitPostgresql(cfg.PostgresURL, log)
		if err != nil {
			return Repositories{}, err
		}
		lc.Append(fx.StopHook(func() { infra.ClosePostgresql(db, log) }))
		return gormRepositories(db), nil
	}

	db, err := infra.InitMongo(context.Background(), cfg.MongoURI, cfg.MongoDatabase, log)
	if err != nil {
		return Repositories{}, err
	}
	lc.Append(fx.StopHook(func(ctx context.Context) { infra.CloseMongo(ctx, db, log) }))
	return mongoRepositories(db), nil
}

func gormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Accounts:    repositories.NewAccountRepository(db),
		Trips:       repositories.NewTripRepository(db),
		Comments:    repositories.NewCommentRepository(db),
		Experiences: repositories.NewExperienceRepository(db),
	}
}

func mongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Accounts:    mongorepo.NewAccountRepository(db),
		Trips:       mongorepo.NewTripRepository(db),
		Comments:    mongorepo.NewCommentRepository(db),
		Experiences: mongorepo.NewExperienceRepository(db),
	}
}
