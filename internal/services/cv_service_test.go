package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobook-vn/jobook-api/internal/dtos"
	"github.com/jobook-vn/jobook-api/internal/models"
	"github.com/jobook-vn/jobook-api/internal/repository"
)

func defaultCount(cvs []models.CV) (count int, defaultID uuid.UUID) {
	for _, cv := range cvs {
		if cv.IsDefault {
			count++
			defaultID = cv.ID
		}
	}
	return count, defaultID
}

func TestSetDefaultRemapsCollection(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCVService(env.store)

	cvs, err := svc.SetDefault(env.ctx, env.seeker.ID, env.cvs[1].ID)
	require.NoError(t, err)

	count, id := defaultCount(cvs)
	assert.Equal(t, 1, count)
	assert.Equal(t, env.cvs[1].ID, id)
}

func TestSetDefaultIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCVService(env.store)

	_, err := svc.SetDefault(env.ctx, env.seeker.ID, env.cvs[1].ID)
	require.NoError(t, err)
	cvs, err := svc.SetDefault(env.ctx, env.seeker.ID, env.cvs[1].ID)
	require.NoError(t, err)

	count, id := defaultCount(cvs)
	assert.Equal(t, 1, count)
	assert.Equal(t, env.cvs[1].ID, id)
}

func TestSetDefaultUnknownID(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCVService(env.store)

	_, err := svc.SetDefault(env.ctx, env.seeker.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// The previous default is untouched.
	cvs, err := svc.List(env.ctx, env.seeker.ID)
	require.NoError(t, err)
	count, id := defaultCount(cvs)
	assert.Equal(t, 1, count)
	assert.Equal(t, env.cvs[0].ID, id)
}

func TestUploadFirstCVBecomesDefault(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCVService(env.store)

	// A fresh user with an empty library.
	user := &models.User{ID: uuid.New(), Email: "new@example.com", Name: "New Seeker", Role: models.RoleSeeker}
	require.NoError(t, env.store.Users.Create(env.ctx, user))

	first, err := svc.Upload(env.ctx, user.ID, dtos.CreateCVRequest{Title: "First CV", FileName: "first.pdf"})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := svc.Upload(env.ctx, user.ID, dtos.CreateCVRequest{Title: "Second CV", FileName: "second.pdf"})
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
}

func TestDeleteDefaultCVBlockedWhileOthersRemain(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCVService(env.store)

	err := svc.Delete(env.ctx, env.seeker.ID, env.cvs[0].ID)
	assert.ErrorIs(t, err, ErrValidation)

	// Non-default CVs delete fine.
	require.NoError(t, svc.Delete(env.ctx, env.seeker.ID, env.cvs[1].ID))
}

func TestDeleteKeepsApplicationSnapshot(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCVService(env.store)
	app := env.addApplication(t, 0, models.StatusReceived, 80)

	// The application submitted CV 0; deleting CV 1 then CV 0 (last one
	// standing) must leave the snapshot readable.
	require.NoError(t, svc.Delete(env.ctx, env.seeker.ID, env.cvs[1].ID))
	require.NoError(t, svc.Delete(env.ctx, env.seeker.ID, env.cvs[0].ID))

	stored, err := env.store.Applications.GetByID(env.ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Developer CV", stored.CVTitle)
}
