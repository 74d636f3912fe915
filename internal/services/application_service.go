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

// maxNoteLength caps both the seeker's and the employer's free-text notes.
const maxNoteLength = 500

// ApplicationQuery holds the seeker-side list filters. Zero value means no
// filtering.
type ApplicationQuery struct {
	SearchTerm string
	Status     string
	Tab        Tab
}

// ApplicationService covers the seeker side of application tracking: the
// grouped view, the dashboard stats, and the mutations a seeker may perform
// on their own applications.
type ApplicationService struct {
	store   *repository.Store
	insight *InsightService
}

func NewApplicationService(store *repository.Store, insight *InsightService) *ApplicationService {
	return &ApplicationService{store: store, insight: insight}
}

// GroupedByPost returns the caller's applications grouped under the post they
// target, filtered by q. Groups that end up empty after filtering are
// dropped; the term predicate matches post title and company/author name.
func (s *ApplicationService) GroupedByPost(ctx context.Context, seekerID uuid.UUID, q ApplicationQuery) ([]dtos.PostWithApplications, error) {
	apps, err := s.store.Applications.ListByApplicant(ctx, seekerID)
	if err != nil {
		return nil, err
	}

	groups := make(map[uuid.UUID]*dtos.PostWithApplications)
	var order []uuid.UUID
	for _, app := range apps {
		group, ok := groups[app.PostID]
		if !ok {
			summary, err := s.postSummary(ctx, app.PostID)
			if err != nil {
				return nil, err
			}
			group = &dtos.PostWithApplications{Post: summary}
			groups[app.PostID] = group
			order = append(order, app.PostID)
		}

		if !matchesTerm(q.SearchTerm, group.Post.Title, group.Post.CompanyOrAuthor) ||
			!matchesStatus(q.Status, app.Status) ||
			!matchesTab(q.Tab, app.Status) {
			continue
		}
		group.Applications = append(group.Applications, seekerView(app))
	}

	result := make([]dtos.PostWithApplications, 0, len(order))
	for _, postID := range order {
		if group := groups[postID]; len(group.Applications) > 0 {
			result = append(result, *group)
		}
	}
	return result, nil
}

// Stats summarizes the caller's applications across all posts, unfiltered.
func (s *ApplicationService) Stats(ctx context.Context, seekerID uuid.UUID) (Stats, error) {
	apps, err := s.store.Applications.ListByApplicant(ctx, seekerID)
	if err != nil {
		return Stats{}, err
	}
	return Summarize(apps), nil
}

// Apply submits a CV against a post. The CV is copied into the application as
// a snapshot; later edits to the library CV do not propagate. When no CV id
// is given the caller's default CV is used. MatchScore and AISummary arrive
// as opaque inputs; if the optional insight service is configured and no
// summary was supplied, it fills one in.
func (s *ApplicationService) Apply(ctx context.Context, seekerID, postID uuid.UUID, req dtos.ApplyRequest) (*models.Application, error) {
	post, err := s.store.Posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	cv, err := s.resolveCV(ctx, seekerID, req.CVID)
	if err != nil {
		return nil, err
	}
	if req.MatchScore < 0 || req.MatchScore > 100 {
		return nil, fmt.Errorf("%w: match score must be between 0 and 100", ErrValidation)
	}
	if len(req.Note) > maxNoteLength {
		return nil, fmt.Errorf("%w: note exceeds %d characters", ErrValidation, maxNoteLength)
	}

	now := time.Now()
	app := &models.Application{
		ID:          uuid.New(),
		PostID:      post.ID,
		ApplicantID: seekerID,
		CVSnapshot:  models.SnapshotOf(cv),
		Status:      models.StatusReceived,
		AppliedAt:   now,
		LastUpdated: now,
		MatchScore:  req.MatchScore,
		AISummary:   req.AISummary,
		SeekerNote:  req.Note,
	}

	if len(app.AISummary) == 0 && s.insight.Enabled() {
		summary, err := s.insight.SummarizeApplication(ctx, post, app.CVSnapshot)
		if err != nil {
			log.Warn().Err(err).Msg("insight summary failed, submitting without one")
		} else {
			app.AISummary = summary
		}
	}

	if err := s.store.Applications.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Withdraw removes the caller's application. Missing ids surface as
// repository.ErrNotFound rather than a silent no-op. Because applications are
// grouped per post on read, withdrawing the last one under a post makes the
// whole group disappear.
func (s *ApplicationService) Withdraw(ctx context.Context, seekerID, applicationID uuid.UUID) error {
	app, err := s.store.Applications.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.ApplicantID != seekerID {
		return ErrForbidden
	}
	return s.store.Applications.Delete(ctx, applicationID)
}

// SwapCV replaces the application's CV snapshot with the current state of
// another CV from the caller's library. Swapping to the CV already attached
// is rejected, so no spurious update happens. Status and match score are left
// untouched.
func (s *ApplicationService) SwapCV(ctx context.Context, seekerID, applicationID, newCVID uuid.UUID) (*dtos.MyApplication, error) {
	app, err := s.store.Applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != seekerID {
		return nil, ErrForbidden
	}
	if app.CVID == newCVID {
		return nil, fmt.Errorf("%w: application already uses this CV", ErrValidation)
	}

	cv, err := s.store.CVs.GetByID(ctx, newCVID)
	if err != nil {
		return nil, err
	}
	if cv.UserID != seekerID {
		return nil, ErrForbidden
	}

	app.CVSnapshot = models.SnapshotOf(cv)
	app.LastUpdated = time.Now()
	if err := s.store.Applications.Update(ctx, app); err != nil {
		return nil, err
	}
	view := seekerView(*app)
	return &view, nil
}

// EditNote overwrites the caller's private note on an application. An empty
// string clears it. The employer's notes on the same application are a
// separate field and are never touched here.
func (s *ApplicationService) EditNote(ctx context.Context, seekerID, applicationID uuid.UUID, note string) (*dtos.MyApplication, error) {
	if len(note) > maxNoteLength {
		return nil, fmt.Errorf("%w: note exceeds %d characters", ErrValidation, maxNoteLength)
	}
	app, err := s.store.Applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != seekerID {
		return nil, ErrForbidden
	}

	app.SeekerNote = note
	app.LastUpdated = time.Now()
	if err := s.store.Applications.Update(ctx, app); err != nil {
		return nil, err
	}
	view := seekerView(*app)
	return &view, nil
}

func (s *ApplicationService) resolveCV(ctx context.Context, seekerID uuid.UUID, cvID string) (*models.CV, error) {
	if cvID == "" {
		cvs, err := s.store.CVs.ListByUser(ctx, seekerID)
		if err != nil {
			return nil, err
		}
		for i := range cvs {
			if cvs[i].IsDefault {
				return &cvs[i], nil
			}
		}
		return nil, fmt.Errorf("%w: no cv_id given and no default CV set", ErrValidation)
	}

	id, err := uuid.Parse(cvID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cv_id", ErrValidation)
	}
	cv, err := s.store.CVs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cv.UserID != seekerID {
		return nil, ErrForbidden
	}
	return cv, nil
}

func (s *ApplicationService) postSummary(ctx context.Context, postID uuid.UUID) (dtos.PostSummary, error) {
	post, err := s.store.Posts.GetByID(ctx, postID)
	if err != nil {
		return dtos.PostSummary{}, err
	}
	author, err := s.store.Users.GetByID(ctx, post.AuthorID)
	if err != nil {
		return dtos.PostSummary{}, err
	}
	companyOrAuthor := author.Company
	if companyOrAuthor == "" {
		companyOrAuthor = author.Name
	}
	return dtos.PostSummary{
		ID:              post.ID,
		Title:           post.Title,
		Type:            post.Type,
		CompanyOrAuthor: companyOrAuthor,
		Location:        post.Location,
		Deadline:        post.Deadline,
		PostedAt:        post.CreatedAt,
	}, nil
}

func seekerView(app models.Application) dtos.MyApplication {
	return dtos.MyApplication{
		ID:         app.ID,
		AppliedAt:  app.AppliedAt,
		CV:         app.CVSnapshot,
		Status:     app.Status,
		MatchScore: app.MatchScore,
		AISummary:  app.AISummary,
		Note:       app.SeekerNote,
	}
}
