package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/services"
)

func createTestSource(t *testing.T, svc *services.ScrapingService, name string) *models.ScrapingSource {
	t.Helper()
	source, err := svc.CreateSource(&dtos.ScrapingSourceCreateRequest{
		Name:    name,
		BaseURL: "https://boards.example.test",
	})
	require.NoError(t, err)
	return source
}

func TestCreateSource_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewScrapingService(db)

	source := createTestSource(t, svc, "example-board")
	assert.True(t, source.IsActive)
	assert.Equal(t, 1.0, source.DelaySeconds)
	assert.Equal(t, 10, source.MaxPages)

	_, err := svc.CreateSource(&dtos.ScrapingSourceCreateRequest{
		Name:    "example-board",
		BaseURL: "https://other.example.test",
	})
	assert.ErrorIs(t, err, services.ErrDuplicateSource)
}

func TestCreateJob_RequiresSource(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewScrapingService(db)
	user := createTestUser(t, db, "scraper@example.com")

	_, err := svc.CreateJob(user.ID, &dtos.ScrapingJobCreateRequest{SourceID: 9999})
	assert.ErrorIs(t, err, services.ErrNotFound)

	source := createTestSource(t, svc, "example-board")
	job, err := svc.CreateJob(user.ID, &dtos.ScrapingJobCreateRequest{
		SourceID:    source.ID,
		SearchTerms: []string{"golang"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ScrapingPending, job.Status)
	assert.Equal(t, 100, job.MaxResults)
}

func TestUpdateJobStatus_Timestamps(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewScrapingService(db)
	user := createTestUser(t, db, "scraper@example.com")
	source := createTestSource(t, svc, "example-board")

	job, err := svc.CreateJob(user.ID, &dtos.ScrapingJobCreateRequest{SourceID: source.ID})
	require.NoError(t, err)
	require.Nil(t, job.StartedAt)

	running, err := svc.UpdateJobStatus(job.ID, &dtos.ScrapingJobStatusUpdate{Status: "running"})
	require.NoError(t, err)
	require.NotNil(t, running.StartedAt)
	firstStart := *running.StartedAt

	// A second running report must not move the start timestamp. Compare
	// instants; the round trip through the database normalizes the location.
	running, err = svc.UpdateJobStatus(job.ID, &dtos.ScrapingJobStatusUpdate{Status: "running"})
	require.NoError(t, err)
	require.NotNil(t, running.StartedAt)
	assert.True(t, firstStart.Equal(*running.StartedAt))

	found, saved := 40, 25
	done, err := svc.UpdateJobStatus(job.ID, &dtos.ScrapingJobStatusUpdate{
		Status:       "completed",
		ResultsFound: &found,
		ResultsSaved: &saved,
	})
	require.NoError(t, err)
	assert.NotNil(t, done.CompletedAt)
	assert.Equal(t, 25, done.ResultsSaved)

	// Completed runs roll their saved count into the source.
	updatedSource, err := svc.GetSource(source.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, updatedSource.TotalJobsScraped)
	assert.NotNil(t, updatedSource.LastScrapeAt)
}

func TestUpdateJobStatus_Failed(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewScrapingService(db)
	user := createTestUser(t, db, "scraper@example.com")
	source := createTestSource(t, svc, "example-board")

	job, err := svc.CreateJob(user.ID, &dtos.ScrapingJobCreateRequest{SourceID: source.ID})
	require.NoError(t, err)

	msg := "target returned 403"
	failed, err := svc.UpdateJobStatus(job.ID, &dtos.ScrapingJobStatusUpdate{
		Status:       "failed",
		ErrorMessage: &msg,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ScrapingFailed, failed.Status)
	assert.NotNil(t, failed.CompletedAt)
	assert.Equal(t, "target returned 403", failed.ErrorMessage)

	// Failed runs never touch the source counters.
	unchanged, err := svc.GetSource(source.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unchanged.TotalJobsScraped)
}

func TestListJobs_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewScrapingService(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	source := createTestSource(t, svc, "example-board")

	a, err := svc.CreateJob(alice.ID, &dtos.ScrapingJobCreateRequest{SourceID: source.ID})
	require.NoError(t, err)
	_, err = svc.CreateJob(bob.ID, &dtos.ScrapingJobCreateRequest{SourceID: source.ID})
	require.NoError(t, err)

	_, err = svc.UpdateJobStatus(a.ID, &dtos.ScrapingJobStatusUpdate{Status: "running"})
	require.NoError(t, err)

	mine, err := svc.ListJobs(alice.ID, "", 0, 0, 100)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	running, err := svc.ListJobs(0, "running", 0, 0, 100)
	require.NoError(t, err)
	assert.Len(t, running, 1)

	all, err := svc.ListJobs(0, "", source.ID, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
