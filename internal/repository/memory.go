package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jobook-vn/jobook-api/internal/models"
)

// memoryStore keeps everything in maps. It backs the test suites and demo
// mode, standing in for the mock arrays the UI prototype shipped with. The
// mutex only serializes map access for memory safety; there is no version
// field and no conflict detection, so concurrent writers keep last-write-wins
// semantics.
type memoryStore struct {
	mu           sync.RWMutex
	users        map[uuid.UUID]models.User
	cvs          map[uuid.UUID]models.CV
	posts        map[uuid.UUID]models.Post
	applications map[uuid.UUID]models.Application
	events       []models.ApplicationEvent
}

// NewMemoryStore returns a Store backed by in-process maps.
func NewMemoryStore() *Store {
	m := &memoryStore{
		users:        make(map[uuid.UUID]models.User),
		cvs:          make(map[uuid.UUID]models.CV),
		posts:        make(map[uuid.UUID]models.Post),
		applications: make(map[uuid.UUID]models.Application),
	}
	return &Store{
		Users:        &memoryUserRepository{m},
		CVs:          &memoryCVRepository{m},
		Posts:        &memoryPostRepository{m},
		Applications: &memoryApplicationRepository{m},
		Events:       &memoryEventRepository{m},
	}
}

type memoryUserRepository struct{ s *memoryStore }

func (r *memoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) Update(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return ErrNotFound
	}
	r.s.users[user.ID] = *user
	return nil
}

type memoryCVRepository struct{ s *memoryStore }

func (r *memoryCVRepository) Create(_ context.Context, cv *models.CV) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.cvs[cv.ID] = *cv
	return nil
}

func (r *memoryCVRepository) GetByID(_ context.Context, id uuid.UUID) (*models.CV, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cv, ok := r.s.cvs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &cv, nil
}

func (r *memoryCVRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]models.CV, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var cvs []models.CV
	for _, cv := range r.s.cvs {
		if cv.UserID == userID {
			cvs = append(cvs, cv)
		}
	}
	sort.Slice(cvs, func(i, j int) bool { return cvs[i].UploadDate.Before(cvs[j].UploadDate) })
	return cvs, nil
}

func (r *memoryCVRepository) SaveAll(_ context.Context, cvs []models.CV) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cv := range cvs {
		r.s.cvs[cv.ID] = cv
	}
	return nil
}

func (r *memoryCVRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cvs[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.cvs, id)
	return nil
}

type memoryPostRepository struct{ s *memoryStore }

func (r *memoryPostRepository) Create(_ context.Context, post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.posts[post.ID] = *post
	return nil
}

func (r *memoryPostRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	post, ok := r.s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (r *memoryPostRepository) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var posts []models.Post
	for _, post := range r.s.posts {
		if post.AuthorID == authorID {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (r *memoryPostRepository) Update(_ context.Context, post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[post.ID]; !ok {
		return ErrNotFound
	}
	r.s.posts[post.ID] = *post
	return nil
}

func (r *memoryPostRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.posts, id)
	return nil
}

type memoryApplicationRepository struct{ s *memoryStore }

func (r *memoryApplicationRepository) Create(_ context.Context, app *models.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.applications[app.ID] = *app
	return nil
}

func (r *memoryApplicationRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	app, ok := r.s.applications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &app, nil
}

func (r *memoryApplicationRepository) ListByApplicant(_ context.Context, applicantID uuid.UUID) ([]models.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var apps []models.Application
	for _, app := range r.s.applications {
		if app.ApplicantID == applicantID {
			apps = append(apps, app)
		}
	}
	sortByAppliedAt(apps)
	return apps, nil
}

func (r *memoryApplicationRepository) ListByPost(_ context.Context, postID uuid.UUID) ([]models.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var apps []models.Application
	for _, app := range r.s.applications {
		if app.PostID == postID {
			apps = append(apps, app)
		}
	}
	sortByAppliedAt(apps)
	return apps, nil
}

func (r *memoryApplicationRepository) ListByPosts(_ context.Context, postIDs []uuid.UUID) ([]models.Application, error) {
	wanted := make(map[uuid.UUID]bool, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = true
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var apps []models.Application
	for _, app := range r.s.applications {
		if wanted[app.PostID] {
			apps = append(apps, app)
		}
	}
	sortByAppliedAt(apps)
	return apps, nil
}

func (r *memoryApplicationRepository) CountByPost(_ context.Context, postID uuid.UUID) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, app := range r.s.applications {
		if app.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (r *memoryApplicationRepository) Update(_ context.Context, app *models.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.applications[app.ID]; !ok {
		return ErrNotFound
	}
	r.s.applications[app.ID] = *app
	return nil
}

func (r *memoryApplicationRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.applications[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.applications, id)
	return nil
}

func sortByAppliedAt(apps []models.Application) {
	sort.Slice(apps, func(i, j int) bool { return apps[i].AppliedAt.After(apps[j].AppliedAt) })
}

type memoryEventRepository struct{ s *memoryStore }

func (r *memoryEventRepository) Append(_ context.Context, event *models.ApplicationEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.events = append(r.s.events, *event)
	return nil
}

func (r *memoryEventRepository) ListByApplication(_ context.Context, applicationID uuid.UUID) ([]models.ApplicationEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var events []models.ApplicationEvent
	for _, e := range r.s.events {
		if e.ApplicationID == applicationID {
			events = append(events, e)
		}
	}
	return events, nil
}
