package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jobook-vn/jobook-api/internal/dtos"
	"github.com/jobook-vn/jobook-api/internal/models"
	"github.com/jobook-vn/jobook-api/internal/repository"
)

const deadlineLayout = "2006-01-02"

// EmployerService covers the employer side: post management, applicant
// triage, and the dashboard.
type EmployerService struct {
	store *repository.Store

	// enforcePipeline switches UpdateStatus from the unrestricted baseline
	// (any status overwrites any other) to forward-only validation.
	enforcePipeline bool
}

func NewEmployerService(store *repository.Store, enforcePipeline bool) *EmployerService {
	return &EmployerService{store: store, enforcePipeline: enforcePipeline}
}

// MyPosts lists the caller's posts with the derived applicant counts.
// ApplicantCount is always computed from the applications table, never
// stored, so it cannot drift.
func (s *EmployerService) MyPosts(ctx context.Context, employerID uuid.UUID) ([]dtos.EmployerPost, error) {
	posts, err := s.store.Posts.ListByAuthor(ctx, employerID)
	if err != nil {
		return nil, err
	}
	result := make([]dtos.EmployerPost, 0, len(posts))
	for _, post := range posts {
		count, err := s.store.Applications.CountByPost(ctx, post.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, dtos.EmployerPost{Post: post, ApplicantCount: count})
	}
	return result, nil
}

func (s *EmployerService) GetPost(ctx context.Context, employerID, postID uuid.UUID) (*dtos.EmployerPost, error) {
	post, err := s.ownedPost(ctx, employerID, postID)
	if err != nil {
		return nil, err
	}
	count, err := s.store.Applications.CountByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return &dtos.EmployerPost{Post: *post, ApplicantCount: count}, nil
}

func (s *EmployerService) CreatePost(ctx context.Context, employerID uuid.UUID, req dtos.CreatePostRequest) (*models.Post, error) {
	deadline, err := time.Parse(deadlineLayout, req.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: deadline must be YYYY-MM-DD", ErrValidation)
	}
	if err := validateSalaryRange(req.SalaryMin, req.SalaryMax); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		AuthorID:    employerID,
		Type:        models.PostHiring,
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		Location:    req.Location,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Deadline:    deadline,
		Status:      models.PostActive,
		Urgent:      req.Urgent,
	}
	if err := s.store.Posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *EmployerService) UpdatePost(ctx context.Context, employerID, postID uuid.UUID, req dtos.UpdatePostRequest) (*models.Post, error) {
	post, err := s.ownedPost(ctx, employerID, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Skills != nil {
		post.Skills = req.Skills
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.SalaryMin != nil {
		post.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		post.SalaryMax = req.SalaryMax
	}
	if err := validateSalaryRange(post.SalaryMin, post.SalaryMax); err != nil {
		return nil, err
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(deadlineLayout, *req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("%w: deadline must be YYYY-MM-DD", ErrValidation)
		}
		post.Deadline = deadline
	}
	if req.Status != nil {
		status := models.PostStatus(*req.Status)
		if status != models.PostActive && status != models.PostPaused && status != models.PostClosed {
			return nil, fmt.Errorf("%w: unknown post status %q", ErrValidation, *req.Status)
		}
		post.Status = status
	}
	if req.Urgent != nil {
		post.Urgent = *req.Urgent
	}
	post.UpdatedAt = time.Now()

	if err := s.store.Posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *EmployerService) DeletePost(ctx context.Context, employerID, postID uuid.UUID) error {
	if _, err := s.ownedPost(ctx, employerID, postID); err != nil {
		return err
	}
	return s.store.Posts.Delete(ctx, postID)
}

// PostApplications lists the applications against one of the caller's posts.
func (s *EmployerService) PostApplications(ctx context.Context, employerID, postID uuid.UUID) ([]dtos.EmployerApplication, error) {
	if _, err := s.ownedPost(ctx, employerID, postID); err != nil {
		return nil, err
	}
	apps, err := s.store.Applications.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.employerViews(ctx, apps)
}

func (s *EmployerService) GetApplication(ctx context.Context, employerID, applicationID uuid.UUID) (*dtos.EmployerApplication, error) {
	app, err := s.ownedApplication(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}
	view, err := s.employerView(ctx, *app)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdateStatus overwrites the application's status and refreshes its
// modification time. Under the baseline policy any valid status may replace
// any other, including jumps straight from received to hired. Notes are
// updated only when the request carries them. Every change appends an audit
// event.
func (s *EmployerService) UpdateStatus(ctx context.Context, employerID, applicationID uuid.UUID, status models.ApplicationStatus, notes *string) (*dtos.EmployerApplication, error) {
	app, err := s.ownedApplication(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateTransition(app.Status, status, s.enforcePipeline); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if notes != nil && len(*notes) > maxNoteLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrValidation, maxNoteLength)
	}

	event := &models.ApplicationEvent{
		ID:            uuid.New(),
		CreatedAt:     time.Now(),
		ApplicationID: app.ID,
		FromStatus:    app.Status,
		ToStatus:      status,
	}

	app.Status = status
	if notes != nil {
		app.EmployerNote = *notes
	}
	app.LastUpdated = time.Now()
	if err := s.store.Applications.Update(ctx, app); err != nil {
		return nil, err
	}
	if err := s.store.Events.Append(ctx, event); err != nil {
		log.Warn().Err(err).Str("application_id", app.ID.String()).Msg("failed to record status event")
	}

	view, err := s.employerView(ctx, *app)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdateNotes overwrites the employer's notes. The seeker's private note on
// the same application is untouched.
func (s *EmployerService) UpdateNotes(ctx context.Context, employerID, applicationID uuid.UUID, notes string) (*dtos.EmployerApplication, error) {
	if len(notes) > maxNoteLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrValidation, maxNoteLength)
	}
	app, err := s.ownedApplication(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}

	app.EmployerNote = notes
	app.LastUpdated = time.Now()
	if err := s.store.Applications.Update(ctx, app); err != nil {
		return nil, err
	}
	view, err := s.employerView(ctx, *app)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// StatusHistory returns the audit trail of an application's status changes.
func (s *EmployerService) StatusHistory(ctx context.Context, employerID, applicationID uuid.UUID) ([]models.ApplicationEvent, error) {
	if _, err := s.ownedApplication(ctx, employerID, applicationID); err != nil {
		return nil, err
	}
	return s.store.Events.ListByApplication(ctx, applicationID)
}

// Dashboard aggregates over every application against the caller's posts,
// with the same Summarize computation the seeker dashboard uses.
func (s *EmployerService) Dashboard(ctx context.Context, employerID uuid.UUID) (dtos.DashboardStats, error) {
	posts, err := s.store.Posts.ListByAuthor(ctx, employerID)
	if err != nil {
		return dtos.DashboardStats{}, err
	}
	activePosts := 0
	postIDs := make([]uuid.UUID, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
		if post.Status == models.PostActive {
			activePosts++
		}
	}

	apps, err := s.store.Applications.ListByPosts(ctx, postIDs)
	if err != nil {
		return dtos.DashboardStats{}, err
	}
	stats := Summarize(apps)

	return dtos.DashboardStats{
		TotalPosts:          len(posts),
		ActivePosts:         activePosts,
		TotalApplications:   stats.Total,
		PendingApplications: stats.Active,
		AvgMatchScore:       stats.AvgMatchScore,
	}, nil
}

// Search filters the applications against the caller's posts. The term
// predicate matches applicant name, headline and CV title; post and status
// filters compose with it conjunctively, so filter order cannot change the
// result.
func (s *EmployerService) Search(ctx context.Context, employerID uuid.UUID, q dtos.ApplicationSearch) ([]dtos.EmployerApplication, error) {
	var apps []models.Application
	var err error
	if q.PostID != nil {
		if _, err := s.ownedPost(ctx, employerID, *q.PostID); err != nil {
			return nil, err
		}
		apps, err = s.store.Applications.ListByPost(ctx, *q.PostID)
	} else {
		posts, perr := s.store.Posts.ListByAuthor(ctx, employerID)
		if perr != nil {
			return nil, perr
		}
		postIDs := make([]uuid.UUID, 0, len(posts))
		for _, post := range posts {
			postIDs = append(postIDs, post.ID)
		}
		apps, err = s.store.Applications.ListByPosts(ctx, postIDs)
	}
	if err != nil {
		return nil, err
	}

	views, err := s.employerViews(ctx, apps)
	if err != nil {
		return nil, err
	}
	filtered := make([]dtos.EmployerApplication, 0, len(views))
	for _, view := range views {
		if !matchesStatus(q.Status, view.Status) {
			continue
		}
		if !matchesTerm(q.SearchTerm, view.Applicant.Name, view.Applicant.Headline, view.CV.CVTitle) {
			continue
		}
		filtered = append(filtered, view)
	}
	return filtered, nil
}

func (s *EmployerService) ownedPost(ctx context.Context, employerID, postID uuid.UUID) (*models.Post, error) {
	post, err := s.store.Posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != employerID {
		return nil, ErrForbidden
	}
	return post, nil
}

func (s *EmployerService) ownedApplication(ctx context.Context, employerID, applicationID uuid.UUID) (*models.Application, error) {
	app, err := s.store.Applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedPost(ctx, employerID, app.PostID); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *EmployerService) employerView(ctx context.Context, app models.Application) (dtos.EmployerApplication, error) {
	applicant, err := s.store.Users.GetByID(ctx, app.ApplicantID)
	if err != nil {
		return dtos.EmployerApplication{}, err
	}
	return dtos.EmployerApplication{
		ID:     app.ID,
		PostID: app.PostID,
		Applicant: dtos.Applicant{
			ID:       applicant.ID,
			Name:     applicant.Name,
			Headline: applicant.Headline,
			Avatar:   applicant.Avatar,
			Location: applicant.Location,
			Verified: applicant.Verified,
		},
		CV:          app.CVSnapshot,
		AppliedAt:   app.AppliedAt,
		Status:      app.Status,
		Notes:       app.EmployerNote,
		MatchScore:  app.MatchScore,
		AISummary:   app.AISummary,
		LastUpdated: app.LastUpdated,
	}, nil
}

func (s *EmployerService) employerViews(ctx context.Context, apps []models.Application) ([]dtos.EmployerApplication, error) {
	views := make([]dtos.EmployerApplication, 0, len(apps))
	for _, app := range apps {
		view, err := s.employerView(ctx, app)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func validateSalaryRange(min, max *int64) error {
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%w: salary_min must not exceed salary_max", ErrValidation)
	}
	return nil
}
