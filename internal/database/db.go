package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jobook-vn/jobook-api/internal/models"
)

// Connect opens the Postgres connection and migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Info().Msg("database connection established")

	err = db.AutoMigrate(
		&models.User{},
		&models.CV{},
		&models.Post{},
		&models.Application{},
		&models.ApplicationEvent{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
