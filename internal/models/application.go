package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CVSnapshot is the copy of a CV taken when it is submitted. Applications keep
// the snapshot, not a live reference: editing or deleting the library CV later
// never changes what the employer sees was submitted.
type CVSnapshot struct {
	CVID         uuid.UUID `gorm:"type:uuid" json:"cv_id"`
	CVTitle      string    `json:"cv_title"`
	CVFileName   string    `json:"cv_file_name"`
	CVFileURL    string    `json:"cv_file_url"`
	CVUploadDate time.Time `json:"cv_upload_date"`
}

// Application links one seeker's CV submission to one post. It is a single
// record visible to both parties: the seeker and the employer each own one
// private note field on it, and status is shared.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID      uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index" json:"applicant_id"`

	CVSnapshot `gorm:"embedded" json:"cv"`

	Status      ApplicationStatus `gorm:"not null;default:'received'" json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	LastUpdated time.Time         `json:"last_updated"`

	// MatchScore (0-100) and AISummary are opaque inputs supplied at apply
	// time; nothing in this service computes or reinterprets them.
	MatchScore int            `json:"match_score"`
	AISummary  pq.StringArray `gorm:"type:text[]" json:"ai_summary"`

	// SeekerNote and EmployerNote are independent annotations. Each side
	// reads and writes only its own.
	SeekerNote   string `gorm:"type:text" json:"-"`
	EmployerNote string `gorm:"type:text" json:"-"`
}

// SnapshotOf copies the submission-relevant fields of a library CV.
func SnapshotOf(cv *CV) CVSnapshot {
	return CVSnapshot{
		CVID:         cv.ID,
		CVTitle:      cv.Title,
		CVFileName:   cv.FileName,
		CVFileURL:    cv.FileURL,
		CVUploadDate: cv.UploadDate,
	}
}
