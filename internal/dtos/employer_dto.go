package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/jobook-vn/jobook-api/internal/models"
)

// EmployerPost is a post as the employer dashboard renders it, with the
// derived applicant count attached.
type EmployerPost struct {
	models.Post
	ApplicantCount int `json:"applicant_count"`
}

// Applicant is the slice of the user profile the employer sees on an
// application card.
type Applicant struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Headline string    `json:"headline"`
	Avatar   string    `json:"avatar,omitempty"`
	Location string    `json:"location,omitempty"`
	Verified bool      `json:"is_verified"`
}

// EmployerApplication is the employer-side projection: it carries the
// employer's notes and the applicant profile, and hides the seeker's note.
type EmployerApplication struct {
	ID          uuid.UUID                `json:"id"`
	PostID      uuid.UUID                `json:"post_id"`
	Applicant   Applicant                `json:"applicant"`
	CV          models.CVSnapshot        `json:"cv"`
	AppliedAt   time.Time                `json:"applied_at"`
	Status      models.ApplicationStatus `json:"status"`
	Notes       string                   `json:"notes"`
	MatchScore  int                      `json:"match_score"`
	AISummary   []string                 `json:"ai_summary"`
	LastUpdated time.Time                `json:"last_updated"`
}

type CreatePostRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Skills      []string `json:"skills"`
	Location    string   `json:"location"`
	SalaryMin   *int64   `json:"salary_min"`
	SalaryMax   *int64   `json:"salary_max"`
	Deadline    string   `json:"deadline" binding:"required"`
	Urgent      bool     `json:"is_urgent"`
}

type UpdatePostRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
	Location    *string  `json:"location"`
	SalaryMin   *int64   `json:"salary_min"`
	SalaryMax   *int64   `json:"salary_max"`
	Deadline    *string  `json:"deadline"`
	Status      *string  `json:"status"`
	Urgent      *bool    `json:"is_urgent"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

// ApplicationSearch carries the employer applicant-search filters; all are
// optional and compose with AND.
type ApplicationSearch struct {
	PostID     *uuid.UUID
	Status     string
	SearchTerm string
}

// DashboardStats is the employer dashboard summary. PendingApplications
// counts the active bucket (received, in_review, interview).
type DashboardStats struct {
	TotalPosts          int `json:"total_posts"`
	ActivePosts         int `json:"active_posts"`
	TotalApplications   int `json:"total_applications"`
	PendingApplications int `json:"pending_applications"`
	AvgMatchScore       int `json:"avg_match_score"`
}
