package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

func TestRegister_HashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)

	user, err := svc.Register(&dtos.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Passw0rd",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "Passw0rd", user.HashedPassword)
	assert.True(t, auth.CheckPassword("Passw0rd", user.HashedPassword))
	assert.Equal(t, "user", string(user.Role))
	assert.True(t, user.IsActive)
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)

	createTestUser(t, db, "alice@example.com")

	_, err := svc.Register(&dtos.RegisterRequest{
		Name:     "Other Alice",
		Email:    "alice@example.com",
		Password: "Passw0rd",
	})
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
}

func TestRegister_RejectsWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)

	_, err := svc.Register(&dtos.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "weakpassword", // no upper, no digit
	})
	assert.ErrorIs(t, err, auth.ErrWeakPassword)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)
	createTestUser(t, db, "alice@example.com")

	user, err := svc.Authenticate("alice@example.com", "Passw0rd")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotNil(t, user.LastLogin)

	_, err = svc.Authenticate("alice@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "Passw0rd")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)
	user := createTestUser(t, db, "alice@example.com")

	require.NoError(t, svc.Deactivate(user.ID))

	_, err := svc.Authenticate("alice@example.com", "Passw0rd")
	assert.ErrorIs(t, err, services.ErrInactiveUser)
}

func TestDeactivate_IsSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)
	user := createTestUser(t, db, "alice@example.com")

	require.NoError(t, svc.Deactivate(user.ID))

	// The row survives; only the flag flips.
	got, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	assert.ErrorIs(t, svc.Deactivate(9999), services.ErrNotFound)
}

func TestUpdate_ChangesPasswordHash(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)
	user := createTestUser(t, db, "alice@example.com")

	newPass := "N3wPassword"
	updated, err := svc.Update(user.ID, &dtos.UserUpdateRequest{Password: &newPass})
	require.NoError(t, err)

	assert.NotEqual(t, newPass, updated.HashedPassword)
	assert.True(t, auth.CheckPassword(newPass, updated.HashedPassword))
	assert.False(t, auth.CheckPassword("Passw0rd", updated.HashedPassword))
}

func TestStats_CountsActivity(t *testing.T) {
	db := newTestDB(t)
	userSvc := services.NewUserService(db)
	interactions := services.NewInteractionService(db)

	user := createTestUser(t, db, "alice@example.com")
	company := createTestCompany(t, db, "Acme")
	offer := createTestOffer(t, db, company.ID, "Backend Engineer", "https://jobs.acme.test/1")

	_, err := interactions.Record(user.ID, offer.ID, services.ActionViewed, nil)
	require.NoError(t, err)
	_, err = interactions.Record(user.ID, offer.ID, services.ActionSaved, nil)
	require.NoError(t, err)
	require.NoError(t, interactions.RecordSearch(user.ID, "golang", nil, 3))

	stats, err := userSvc.Stats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Interactions)
	assert.Equal(t, int64(1), stats.InteractionsByAction[services.ActionViewed])
	assert.Equal(t, int64(1), stats.InteractionsByAction[services.ActionSaved])
	assert.Equal(t, int64(1), stats.Searches)
}
