package scheduler_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobboard/internal/database"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/scheduler"
	"jobboard/internal/services"
)

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

func TestSweep_ExpiresStaleOffers(t *testing.T) {
	db := newTestDB(t)
	jobs := services.NewJobService(db)
	stats := services.NewStatsService(db, nil)

	company, err := services.NewCompanyService(db).Create(&dtos.CompanyCreateRequest{Name: "Acme"})
	require.NoError(t, err)

	stale := time.Now().AddDate(0, 0, -45)
	fresh := time.Now().AddDate(0, 0, -2)
	staleOffer, _, err := jobs.Create(&dtos.JobCreateRequest{
		Title: "Stale Offer Role", SourceURL: "https://a.test/stale", CompanyID: company.ID, PublishedAt: &stale,
	})
	require.NoError(t, err)
	freshOffer, _, err := jobs.Create(&dtos.JobCreateRequest{
		Title: "Fresh Offer Role", SourceURL: "https://a.test/fresh", CompanyID: company.ID, PublishedAt: &fresh,
	})
	require.NoError(t, err)

	s := scheduler.New(jobs, stats, 30, 6)
	s.Sweep(context.Background())

	got, err := jobs.Get(staleOffer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobExpired, got.Status)

	got, err = jobs.Get(freshOffer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobActive, got.Status)
}

func TestStartStop(t *testing.T) {
	db := newTestDB(t)
	jobs := services.NewJobService(db)
	stats := services.NewStatsService(db, nil)

	s := scheduler.New(jobs, stats, 30, 6)
	require.NoError(t, s.Start(context.Background()))
	s.Stop()
}
