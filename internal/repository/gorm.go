package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobook-vn/jobook-api/internal/models"
)

// NewGormStore wires every repository onto one gorm connection.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:        &gormUserRepository{db: db},
		CVs:          &gormCVRepository{db: db},
		Posts:        &gormPostRepository{db: db},
		Applications: &gormApplicationRepository{db: db},
		Events:       &gormEventRepository{db: db},
	}
}

func translateGormError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type gormUserRepository struct {
	db *gorm.DB
}

func (r *gormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &user, nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &user, nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

type gormCVRepository struct {
	db *gorm.DB
}

func (r *gormCVRepository) Create(ctx context.Context, cv *models.CV) error {
	return r.db.WithContext(ctx).Create(cv).Error
}

func (r *gormCVRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CV, error) {
	var cv models.CV
	if err := r.db.WithContext(ctx).First(&cv, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &cv, nil
}

func (r *gormCVRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CV, error) {
	var cvs []models.CV
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("upload_date").
		Find(&cvs).Error
	return cvs, err
}

func (r *gormCVRepository) SaveAll(ctx context.Context, cvs []models.CV) error {
	if len(cvs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(&cvs).Error
}

func (r *gormCVRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.CV{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormPostRepository struct {
	db *gorm.DB
}

func (r *gormPostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *gormPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &post, nil
}

func (r *gormPostRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *gormPostRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *gormPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormApplicationRepository struct {
	db *gorm.DB
}

func (r *gormApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *gormApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &app, nil
}

func (r *gormApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("applied_at desc").
		Find(&apps).Error
	return apps, err
}

func (r *gormApplicationRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("applied_at desc").
		Find(&apps).Error
	return apps, err
}

func (r *gormApplicationRepository) ListByPosts(ctx context.Context, postIDs []uuid.UUID) ([]models.Application, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Order("applied_at desc").
		Find(&apps).Error
	return apps, err
}

func (r *gormApplicationRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("post_id = ?", postID).
		Count(&n).Error
	return int(n), err
}

func (r *gormApplicationRepository) Update(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *gormApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormEventRepository struct {
	db *gorm.DB
}

func (r *gormEventRepository) Append(ctx context.Context, event *models.ApplicationEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *gormEventRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]models.ApplicationEvent, error) {
	var events []models.ApplicationEvent
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&events).Error
	return events, err
}
