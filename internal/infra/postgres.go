package infra

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"solotrip/internal/models/db_models"
	"solotrip/pkg/logger"
)

func InitPostgresql(dsn string, log *logger.Logger) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		return nil, fmt.Errorf("getting postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := AutoMigrate(connectionPool); err != nil {
		return nil, err
	}

	log.Info("postgres connected")
	return connectionPool, nil
}

// AutoMigrate creates or updates the tables for every persisted model.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Trip{},
		&db_models.Comment{},
		&db_models.Experience{},
	); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, log *logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Warn("closing database connection", "error", err)
	} else {
		log.Info("postgres connection closed")
	}
}
