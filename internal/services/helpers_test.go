package services_test

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobboard/internal/database"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/services"
)

// newTestDB opens an isolated in-memory SQLite database with the full
// schema. cache=shared keeps the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user, err := services.NewUserService(db).Register(&dtos.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "Passw0rd",
	})
	require.NoError(t, err)
	return user
}

func createTestCompany(t *testing.T, db *gorm.DB, name string) *models.Company {
	t.Helper()
	company, err := services.NewCompanyService(db).Create(&dtos.CompanyCreateRequest{
		Name:   name,
		Sector: "software",
	})
	require.NoError(t, err)
	return company
}

func createTestOffer(t *testing.T, db *gorm.DB, companyID uint, title, url string) *models.JobOffer {
	t.Helper()
	offer, created, err := services.NewJobService(db).Create(&dtos.JobCreateRequest{
		Title:     title,
		SourceURL: url,
		CompanyID: companyID,
	})
	require.NoError(t, err)
	require.True(t, created)
	return offer
}
