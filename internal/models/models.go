package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserRole separates the two account types. A user holds exactly one role,
// fixed at registration.
type UserRole string

const (
	RoleSeeker   UserRole = "SEEKER"
	RoleEmployer UserRole = "EMPLOYER"
)

// PostType tells whether a post offers a role or looks for one.
type PostType string

const (
	PostHiring  PostType = "hiring"
	PostSeeking PostType = "seeking"
)

// PostStatus is the publication state of an employer post.
type PostStatus string

const (
	PostActive PostStatus = "active"
	PostPaused PostStatus = "paused"
	PostClosed PostStatus = "closed"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email    string   `gorm:"uniqueIndex;not null" json:"email"`
	Name     string   `gorm:"not null" json:"name"`
	Role     UserRole `gorm:"not null" json:"role"`
	Avatar   string   `json:"avatar,omitempty"`
	Location string   `json:"location,omitempty"`
	Verified bool     `json:"is_verified"`

	// Company is meaningful only for EMPLOYER accounts, Headline only for
	// SEEKER accounts. Kept as plain optional columns, matching the role.
	Company  string `json:"company,omitempty"`
	Headline string `json:"headline,omitempty"`
}

// CV is a named document in a seeker's library. At most one CV per owner has
// IsDefault set; SetDefault remaps the whole collection to keep that true.
type CV struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string    `gorm:"not null" json:"title"`
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	UploadDate time.Time `json:"upload_date"`
	Size       string    `json:"size"`
	IsDefault  bool      `json:"is_default"`
}

type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AuthorID uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Type     PostType  `gorm:"not null" json:"type"`

	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Skills      pq.StringArray `gorm:"type:text[]" json:"skills"`
	Location    string         `json:"location"`
	SalaryMin   *int64         `json:"salary_min,omitempty"`
	SalaryMax   *int64         `json:"salary_max,omitempty"`
	Deadline    time.Time      `json:"deadline"`
	Status      PostStatus     `gorm:"default:'active'" json:"status"`
	ViewCount   int            `json:"view_count"`
	Urgent      bool           `json:"is_urgent"`

	// CVID is set on seeking posts only: the CV the seeker attached.
	CVID *uuid.UUID `gorm:"type:uuid" json:"cv_id,omitempty"`
}

// ApplicationEvent is an audit row appended whenever an application's status
// changes. The baseline contract does not require reading it back, but the
// history is cheap to keep and the employer endpoint exposes it.
type ApplicationEvent struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time         `json:"created_at"`
	ApplicationID uuid.UUID         `gorm:"type:uuid;not null;index" json:"application_id"`
	FromStatus    ApplicationStatus `json:"from_status"`
	ToStatus      ApplicationStatus `json:"to_status"`
}
