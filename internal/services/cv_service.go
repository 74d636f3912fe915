package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jobook-vn/jobook-api/internal/dtos"
	"github.com/jobook-vn/jobook-api/internal/models"
	"github.com/jobook-vn/jobook-api/internal/repository"
)

// CVService manages a seeker's CV library.
type CVService struct {
	store *repository.Store
}

func NewCVService(store *repository.Store) *CVService {
	return &CVService{store: store}
}

func (s *CVService) List(ctx context.Context, userID uuid.UUID) ([]models.CV, error) {
	return s.store.CVs.ListByUser(ctx, userID)
}

// Upload registers a new CV. The first CV in an empty library becomes the
// default automatically.
func (s *CVService) Upload(ctx context.Context, userID uuid.UUID, req dtos.CreateCVRequest) (*models.CV, error) {
	existing, err := s.store.CVs.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cv := &models.CV{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      req.Title,
		FileName:   req.FileName,
		FileURL:    req.FileURL,
		Size:       req.Size,
		UploadDate: time.Now(),
		IsDefault:  len(existing) == 0,
	}
	if err := s.store.CVs.Create(ctx, cv); err != nil {
		return nil, err
	}
	return cv, nil
}

// SetDefault marks one CV as the default and clears the flag on every other
// CV the caller owns. The whole collection is remapped in one pass so the
// single-default invariant cannot be broken by a partial update; calling it
// twice with the same id leaves the collection unchanged.
func (s *CVService) SetDefault(ctx context.Context, userID, cvID uuid.UUID) ([]models.CV, error) {
	cvs, err := s.store.CVs.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cvs {
		cvs[i].IsDefault = cvs[i].ID == cvID
		if cvs[i].IsDefault {
			found = true
		}
	}
	if !found {
		return nil, repository.ErrNotFound
	}

	if err := s.store.CVs.SaveAll(ctx, cvs); err != nil {
		return nil, err
	}
	return cvs, nil
}

// Delete removes a CV from the library. Applications that submitted it keep
// their snapshot. The default CV cannot be deleted while other CVs remain,
// because that would leave the library without a default.
func (s *CVService) Delete(ctx context.Context, userID, cvID uuid.UUID) error {
	cv, err := s.store.CVs.GetByID(ctx, cvID)
	if err != nil {
		return err
	}
	if cv.UserID != userID {
		return ErrForbidden
	}

	if cv.IsDefault {
		cvs, err := s.store.CVs.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(cvs) > 1 {
			return fmt.Errorf("%w: set another CV as default before deleting this one", ErrValidation)
		}
	}
	return s.store.CVs.Delete(ctx, cvID)
}
