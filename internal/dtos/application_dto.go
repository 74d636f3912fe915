package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/jobook-vn/jobook-api/internal/models"
)

// MyApplication is the seeker-side projection of an application: it carries
// the seeker's private note and hides the employer's.
type MyApplication struct {
	ID         uuid.UUID                `json:"id"`
	AppliedAt  time.Time                `json:"applied_at"`
	CV         models.CVSnapshot        `json:"cv"`
	Status     models.ApplicationStatus `json:"status"`
	MatchScore int                      `json:"match_score"`
	AISummary  []string                 `json:"ai_summary"`
	Note       string                   `json:"note"`
}

// PostSummary is the post header shown above a group of applications.
type PostSummary struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Type            models.PostType `json:"type"`
	CompanyOrAuthor string          `json:"company_or_author"`
	Location        string          `json:"location"`
	Deadline        time.Time       `json:"deadline"`
	PostedAt        time.Time       `json:"posted_at"`
}

// PostWithApplications groups a seeker's applications under the post they
// target. A group with zero applications is never returned.
type PostWithApplications struct {
	Post         PostSummary     `json:"post"`
	Applications []MyApplication `json:"applications"`
}

type ApplyRequest struct {
	CVID       string   `json:"cv_id"`
	MatchScore int      `json:"match_score" binding:"min=0,max=100"`
	AISummary  []string `json:"ai_summary"`
	Note       string   `json:"note"`
}

type SwapCVRequest struct {
	CVID string `json:"cv_id" binding:"required"`
}

type NoteRequest struct {
	Note string `json:"note"`
}
