package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jobook-vn/jobook-api/internal/models"
	"github.com/jobook-vn/jobook-api/internal/repository"
)

// testEnv is a small seeded world over the in-memory store: one employer with
// two posts, one seeker with two CVs.
type testEnv struct {
	ctx      context.Context
	store    *repository.Store
	seeker   *models.User
	employer *models.User
	cvs      []models.CV
	posts    []models.Post
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()

	seeker := &models.User{
		ID:       uuid.New(),
		Email:    "seeker@example.com",
		Name:     "Nguyen Van An",
		Role:     models.RoleSeeker,
		Headline: "Senior React Developer",
	}
	employer := &models.User{
		ID:      uuid.New(),
		Email:   "hr@example.com",
		Name:    "Sarah Wilson",
		Role:    models.RoleEmployer,
		Company: "TechCorp Vietnam",
	}
	require.NoError(t, store.Users.Create(ctx, seeker))
	require.NoError(t, store.Users.Create(ctx, employer))

	cvs := []models.CV{
		{ID: uuid.New(), UserID: seeker.ID, Title: "Senior Developer CV", FileName: "senior.pdf",
			UploadDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), IsDefault: true},
		{ID: uuid.New(), UserID: seeker.ID, Title: "Full-Stack Resume", FileName: "fullstack.pdf",
			UploadDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
	}
	for i := range cvs {
		require.NoError(t, store.CVs.Create(ctx, &cvs[i]))
	}

	posts := []models.Post{
		{ID: uuid.New(), AuthorID: employer.ID, Type: models.PostHiring,
			Title: "Senior React Developer", Location: "Ho Chi Minh City",
			Status: models.PostActive, CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), AuthorID: employer.ID, Type: models.PostHiring,
			Title: "Backend Developer", Location: "Hanoi",
			Status: models.PostActive, CreatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
	}
	for i := range posts {
		require.NoError(t, store.Posts.Create(ctx, &posts[i]))
	}

	return &testEnv{ctx: ctx, store: store, seeker: seeker, employer: employer, cvs: cvs, posts: posts}
}

// addApplication inserts an application from the env's seeker using CV 0.
func (e *testEnv) addApplication(t *testing.T, postIdx int, status models.ApplicationStatus, score int) *models.Application {
	t.Helper()
	app := &models.Application{
		ID:          uuid.New(),
		PostID:      e.posts[postIdx].ID,
		ApplicantID: e.seeker.ID,
		CVSnapshot:  models.SnapshotOf(&e.cvs[0]),
		Status:      status,
		AppliedAt:   time.Now().Add(-24 * time.Hour),
		LastUpdated: time.Now().Add(-24 * time.Hour),
		MatchScore:  score,
	}
	require.NoError(t, e.store.Applications.Create(e.ctx, app))
	return app
}

func (e *testEnv) applicationService() *ApplicationService {
	return NewApplicationService(e.store, nil)
}
