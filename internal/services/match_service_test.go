package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"jobboard/internal/services"
)

func TestAnalyze_MissingSkills(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMatchService(db)

	user := createTestUser(t, db, "alice@example.com")
	user.Profile = datatypes.JSON(`{"skills": ["Go", "PostgreSQL"]}`)
	require.NoError(t, db.Save(user).Error)

	company := createTestCompany(t, db, "Acme")
	offer := createTestOffer(t, db, company.ID, "Backend Engineer", "https://jobs.acme.test/1")
	offer.Requirements = datatypes.JSON(`["Go", "Kubernetes", "Terraform"]`)
	require.NoError(t, db.Save(offer).Error)

	analysis := svc.Analyze(user, offer)
	assert.Equal(t, 75, analysis.MatchScore)
	assert.NotEmpty(t, analysis.Summary)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, analysis.MissingSkills)
}

func TestAnalyze_EmptyProfile(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMatchService(db)

	user := createTestUser(t, db, "alice@example.com")
	company := createTestCompany(t, db, "Acme")
	offer := createTestOffer(t, db, company.ID, "Backend Engineer", "https://jobs.acme.test/1")
	offer.Requirements = datatypes.JSON(`["Go"]`)
	require.NoError(t, db.Save(offer).Error)

	// No profile at all: every requirement is missing.
	analysis := svc.Analyze(user, offer)
	assert.Equal(t, []string{"Go"}, analysis.MissingSkills)
}

func TestAnalyze_NoRequirements(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMatchService(db)

	user := createTestUser(t, db, "alice@example.com")
	company := createTestCompany(t, db, "Acme")
	offer := createTestOffer(t, db, company.ID, "Backend Engineer", "https://jobs.acme.test/1")

	analysis := svc.Analyze(user, offer)
	assert.Empty(t, analysis.MissingSkills)
	assert.NotNil(t, analysis.MissingSkills)
}
