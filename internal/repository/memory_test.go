package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobook-vn/jobook-api/internal/models"
)

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Users.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Applications.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	err = store.Applications.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	err = store.CVs.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	app := &models.Application{ID: uuid.New(), PostID: uuid.New(), ApplicantID: uuid.New(), Status: models.StatusReceived}
	require.NoError(t, store.Applications.Create(ctx, app))

	got, err := store.Applications.GetByID(ctx, app.ID)
	require.NoError(t, err)
	got.Status = models.StatusHired

	// Mutating the returned value must not leak into the store.
	again, err := store.Applications.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReceived, again.Status)
}

func TestMemoryStoreListByPosts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	postA, postB, postC := uuid.New(), uuid.New(), uuid.New()
	for i, postID := range []uuid.UUID{postA, postA, postB, postC} {
		app := &models.Application{
			ID:        uuid.New(),
			PostID:    postID,
			AppliedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Applications.Create(ctx, app))
	}

	apps, err := store.Applications.ListByPosts(ctx, []uuid.UUID{postA, postB})
	require.NoError(t, err)
	assert.Len(t, apps, 3)

	apps, err = store.Applications.ListByPosts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, apps)

	n, err := store.Applications.CountByPost(ctx, postA)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMemoryStoreOrdersApplicationsByAppliedAt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	applicant := uuid.New()
	old := &models.Application{ID: uuid.New(), ApplicantID: applicant, AppliedAt: time.Now().Add(-48 * time.Hour)}
	recent := &models.Application{ID: uuid.New(), ApplicantID: applicant, AppliedAt: time.Now()}
	require.NoError(t, store.Applications.Create(ctx, old))
	require.NoError(t, store.Applications.Create(ctx, recent))

	apps, err := store.Applications.ListByApplicant(ctx, applicant)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, recent.ID, apps[0].ID)
}

func TestSeedLoadsDemoWorld(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, Seed(store))
	ctx := context.Background()

	employer, err := store.Users.GetByEmail(ctx, "hr@techcorp.vn")
	require.NoError(t, err)
	posts, err := store.Posts.ListByAuthor(ctx, employer.ID)
	require.NoError(t, err)
	assert.Len(t, posts, 6)

	seeker, err := store.Users.GetByEmail(ctx, "john.doe@email.com")
	require.NoError(t, err)
	apps, err := store.Applications.ListByApplicant(ctx, seeker.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 6)

	cvs, err := store.CVs.ListByUser(ctx, seeker.ID)
	require.NoError(t, err)
	require.Len(t, cvs, 3)
	defaults := 0
	for _, cv := range cvs {
		if cv.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}
