package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard/internal/models"
)

// Connect opens the Postgres connection and runs migrations.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Println("[database] connection established, running migrations")
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.JobOffer{},
		&models.Application{},
		&models.ScrapingSource{},
		&models.ScrapingJob{},
		&models.UserJobInteraction{},
		&models.SearchHistory{},
	)
}
