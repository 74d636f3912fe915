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

func TestUpdateStatusUnrestrictedJump(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)
	app := env.addApplication(t, 0, models.StatusReceived, 80)

	// Straight from received to hired, skipping every intermediate stage.
	view, err := svc.UpdateStatus(env.ctx, env.employer.ID, app.ID, models.StatusHired, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusHired, view.Status)
	assert.True(t, view.LastUpdated.After(app.LastUpdated))
}

func TestUpdateStatusPipelineEnforcement(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, true)

	app := env.addApplication(t, 0, models.StatusOffer, 80)
	_, err := svc.UpdateStatus(env.ctx, env.employer.ID, app.ID, models.StatusInReview, nil)
	assert.ErrorIs(t, err, ErrValidation)

	// Forward moves and rejections still work.
	_, err = svc.UpdateStatus(env.ctx, env.employer.ID, app.ID, models.StatusHired, nil)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(env.ctx, env.employer.ID, app.ID, models.StatusReceived, nil)
	assert.ErrorIs(t, err, ErrValidation)

	other := env.addApplication(t, 0, models.StatusInterview, 70)
	_, err = svc.UpdateStatus(env.ctx, env.employer.ID, other.ID, models.StatusRejected, nil)
	require.NoError(t, err)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)
	app := env.addApplication(t, 0, models.StatusReceived, 80)

	_, err := svc.UpdateStatus(env.ctx, env.employer.ID, app.ID, "archived", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusAppendsEvent(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)
	app := env.addApplication(t, 0, models.StatusReceived, 80)

	_, err := svc.UpdateStatus(env.ctx, env.employer.ID, app.ID, models.StatusInReview, nil)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(env.ctx, env.employer.ID, app.ID, models.StatusInterview, nil)
	require.NoError(t, err)

	events, err := svc.StatusHistory(env.ctx, env.employer.ID, app.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.StatusReceived, events[0].FromStatus)
	assert.Equal(t, models.StatusInReview, events[0].ToStatus)
	assert.Equal(t, models.StatusInterview, events[1].ToStatus)
}

func TestUpdateStatusWithNotes(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)
	app := env.addApplication(t, 0, models.StatusReceived, 80)

	notes := "moving to interview, strong phone screen"
	view, err := svc.UpdateStatus(env.ctx, env.employer.ID, app.ID, models.StatusInterview, &notes)
	require.NoError(t, err)
	assert.Equal(t, notes, view.Notes)

	// A status change without notes keeps the existing ones.
	view, err = svc.UpdateStatus(env.ctx, env.employer.ID, app.ID, models.StatusOffer, nil)
	require.NoError(t, err)
	assert.Equal(t, notes, view.Notes)
}

func TestUpdateNotesLeavesSeekerNoteAlone(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)
	app := env.addApplication(t, 0, models.StatusReceived, 80)
	app.SeekerNote = "my private note"
	require.NoError(t, env.store.Applications.Update(env.ctx, app))

	view, err := svc.UpdateNotes(env.ctx, env.employer.ID, app.ID, "great candidate")
	require.NoError(t, err)
	assert.Equal(t, "great candidate", view.Notes)

	stored, err := env.store.Applications.GetByID(env.ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "my private note", stored.SeekerNote)
}

func TestEmployerCannotTouchForeignApplications(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)
	app := env.addApplication(t, 0, models.StatusReceived, 80)

	intruder := &models.User{ID: uuid.New(), Email: "other@corp.com", Name: "Other", Role: models.RoleEmployer, Company: "OtherCorp"}
	require.NoError(t, env.store.Users.Create(env.ctx, intruder))

	_, err := svc.UpdateStatus(env.ctx, intruder.ID, app.ID, models.StatusRejected, nil)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.UpdateNotes(env.ctx, intruder.ID, app.ID, "should not land")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDashboardAggregation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)
	env.addApplication(t, 0, models.StatusReceived, 92)
	env.addApplication(t, 0, models.StatusInterview, 88)
	env.addApplication(t, 1, models.StatusOffer, 95)
	env.addApplication(t, 1, models.StatusHired, 85)

	stats, err := svc.Dashboard(env.ctx, env.employer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPosts)
	assert.Equal(t, 2, stats.ActivePosts)
	assert.Equal(t, 4, stats.TotalApplications)
	assert.Equal(t, 2, stats.PendingApplications)
	assert.Equal(t, 90, stats.AvgMatchScore)
}

func TestDashboardEmpty(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)

	stats, err := svc.Dashboard(env.ctx, env.employer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalApplications)
	assert.Equal(t, 0, stats.AvgMatchScore)
}

func TestSearchApplicantFields(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)
	env.addApplication(t, 0, models.StatusInReview, 92)

	// The employer term searches applicant name, headline and CV title,
	// not the post title.
	for term, want := range map[string]int{
		"nguyen":     1, // applicant name
		"react deve": 1, // headline
		"senior dev": 1, // CV title
		"backend":    0, // post title is not in the employer field set
	} {
		apps, err := svc.Search(env.ctx, env.employer.ID, dtos.ApplicationSearch{SearchTerm: term})
		require.NoError(t, err)
		assert.Len(t, apps, want, term)
	}
}

func TestSearchComposesFilters(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)
	env.addApplication(t, 0, models.StatusInReview, 92)
	env.addApplication(t, 0, models.StatusOffer, 95)
	env.addApplication(t, 1, models.StatusInReview, 70)

	apps, err := svc.Search(env.ctx, env.employer.ID, dtos.ApplicationSearch{Status: "in_review"})
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	apps, err = svc.Search(env.ctx, env.employer.ID, dtos.ApplicationSearch{
		PostID: &env.posts[0].ID,
		Status: "in_review",
	})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, 92, apps[0].MatchScore)

	apps, err = svc.Search(env.ctx, env.employer.ID, dtos.ApplicationSearch{Status: StatusFilterAll})
	require.NoError(t, err)
	assert.Len(t, apps, 3)
}

func TestMyPostsDerivesApplicantCount(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)
	env.addApplication(t, 0, models.StatusReceived, 80)
	env.addApplication(t, 0, models.StatusInReview, 85)

	posts, err := svc.MyPosts(env.ctx, env.employer.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	counts := map[uuid.UUID]int{}
	for _, post := range posts {
		counts[post.ID] = post.ApplicantCount
	}
	assert.Equal(t, 2, counts[env.posts[0].ID])
	assert.Equal(t, 0, counts[env.posts[1].ID])
}

func TestCreatePostValidatesSalaryRange(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)

	min, max := int64(40_000_000), int64(20_000_000)
	_, err := svc.CreatePost(env.ctx, env.employer.ID, dtos.CreatePostRequest{
		Title:       "Broken Range",
		Description: "salary range inverted",
		Deadline:    "2024-12-31",
		SalaryMin:   &min,
		SalaryMax:   &max,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePostOwnership(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)

	intruder := &models.User{ID: uuid.New(), Email: "x@corp.com", Name: "X", Role: models.RoleEmployer, Company: "X Corp"}
	require.NoError(t, env.store.Users.Create(env.ctx, intruder))

	title := "hijacked"
	_, err := svc.UpdatePost(env.ctx, intruder.ID, env.posts[0].ID, dtos.UpdatePostRequest{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeletePost(env.ctx, intruder.ID, env.posts[0].ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetApplicationNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEmployerService(env.store, false)

	_, err := svc.GetApplication(env.ctx, env.employer.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
