package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jobook-vn/jobook-api/internal/models"
)

// ErrNotFound is returned when an operation targets an id that is not in the
// store. Services pass it through so callers can tell "missing" from "failed".
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type CVRepository interface {
	Create(ctx context.Context, cv *models.CV) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CV, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CV, error)
	// SaveAll writes back a user's full CV collection in one call. The
	// single-default invariant is maintained by remapping the whole
	// collection, never by flipping one row.
	SaveAll(ctx context.Context, cvs []models.CV) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]models.Application, error)
	ListByPosts(ctx context.Context, postIDs []uuid.UUID) ([]models.Application, error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
	Update(ctx context.Context, app *models.Application) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRepository interface {
	Append(ctx context.Context, event *models.ApplicationEvent) error
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]models.ApplicationEvent, error)
}

// Store bundles the per-entity repositories so wiring stays one value.
type Store struct {
	Users        UserRepository
	CVs          CVRepository
	Posts        PostRepository
	Applications ApplicationRepository
	Events       EventRepository
}
