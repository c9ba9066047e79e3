package database

import (
	"fmt"
	"time"

	"github.com/TanzilIslam/dev-home-sub000/internal/config"
	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/observability/metrics"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	metrics.RegisterGORMCallbacks(db)

	sqlDB, err := db.DB()
	if err == nil {
		metrics.StartDBStatsCollector(sqlDB, 15*time.Second)
	}

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("database initialized")
	return db, nil
}

// Migrate keeps the schema in sync with the model definitions.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Project{},
		&models.Codebase{},
		&models.Link{},
		&models.File{},
	)
}
