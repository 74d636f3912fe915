package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jobook-vn/jobook-api/internal/models"
)

// Seed loads the demo data set: one employer with six hiring posts, one
// seeker with three CVs and one application per post, covering every status.
// Only used with the in-memory store behind DEMO_MODE.
func Seed(store *Store) error {
	ctx := context.Background()

	employer := &models.User{
		ID:       uuid.New(),
		Email:    "hr@techcorp.vn",
		Name:     "Sarah Wilson",
		Role:     models.RoleEmployer,
		Company:  "TechCorp Vietnam",
		Location: "Ho Chi Minh City",
		Verified: true,
	}
	seeker := &models.User{
		ID:       uuid.New(),
		Email:    "john.doe@email.com",
		Name:     "John Doe",
		Role:     models.RoleSeeker,
		Headline: "Senior Full-Stack Developer",
		Location: "Ho Chi Minh City",
		Verified: true,
	}
	for _, user := range []*models.User{employer, seeker} {
		if err := store.Users.Create(ctx, user); err != nil {
			return err
		}
	}

	cvs := []models.CV{
		{
			ID: uuid.New(), UserID: seeker.ID,
			Title: "Senior Developer CV 2024", FileName: "john-doe-senior-dev.pdf",
			UploadDate: date(2024, 1, 15), Size: "2.3 MB", IsDefault: true,
		},
		{
			ID: uuid.New(), UserID: seeker.ID,
			Title: "Full-Stack Engineer Resume", FileName: "john-doe-fullstack.pdf",
			UploadDate: date(2024, 2, 10), Size: "1.8 MB",
		},
		{
			ID: uuid.New(), UserID: seeker.ID,
			Title: "Technical Lead CV", FileName: "john-doe-tech-lead.pdf",
			UploadDate: date(2024, 3, 5), Size: "2.1 MB",
		},
	}
	for i := range cvs {
		if err := store.CVs.Create(ctx, &cvs[i]); err != nil {
			return err
		}
	}

	salary := func(min, max int64) (*int64, *int64) { return &min, &max }

	type seedPost struct {
		title, location string
		skills          []string
		status          models.PostStatus
		urgent          bool
		deadline        time.Time
		posted          time.Time
	}
	type seedApp struct {
		cv      int
		status  models.ApplicationStatus
		score   int
		applied time.Time
		summary []string
		note    string
		empNote string
	}

	posts := []seedPost{
		{"Senior React Developer - Fintech Startup", "Ho Chi Minh City",
			[]string{"React", "TypeScript", "GraphQL", "AWS"}, models.PostActive, true,
			date(2024, 2, 28), date(2024, 1, 10)},
		{"Full-Stack Engineer at AI Startup", "Hanoi",
			[]string{"React", "Node.js", "Python"}, models.PostActive, false,
			date(2024, 3, 15), date(2024, 1, 20)},
		{"Technical Lead - E-commerce Platform", "Ho Chi Minh City",
			[]string{"Node.js", "PostgreSQL", "Kubernetes"}, models.PostActive, false,
			date(2024, 4, 1), date(2024, 2, 1)},
		{"Frontend Developer - Mobile App", "Da Nang",
			[]string{"React Native", "TypeScript"}, models.PostClosed, false,
			date(2024, 1, 31), date(2024, 1, 5)},
		{"Backend Developer - Banking System", "Ho Chi Minh City",
			[]string{"Node.js", "PostgreSQL", "Redis"}, models.PostActive, false,
			date(2024, 3, 30), date(2024, 2, 15)},
		{"DevOps Engineer - Cloud Infrastructure", "Remote",
			[]string{"AWS", "Docker", "Terraform"}, models.PostPaused, false,
			date(2024, 4, 15), date(2024, 3, 1)},
	}
	apps := []seedApp{
		{0, models.StatusInReview, 92, date(2024, 1, 15),
			[]string{"5+ years React experience matches requirements", "Strong TypeScript background", "Previous fintech experience"},
			"Called HR on Jan 20, they will reply this week.",
			"Strong React experience. Scheduled for technical interview."},
		{1, models.StatusInterview, 88, date(2024, 1, 25),
			[]string{"Full-stack experience with React and Node.js", "AI/ML project experience is a plus"},
			"Technical round passed, waiting for founder interview.", ""},
		{2, models.StatusOffer, 95, date(2024, 2, 5),
			[]string{"Strong match for leadership role", "E-commerce platform experience"},
			"Got an offer, negotiating start date and benefits.", ""},
		{0, models.StatusRejected, 72, date(2024, 1, 12),
			[]string{"Strong React skills", "Limited React Native experience"},
			"Feedback: needs more React Native experience.",
			"Good profile but mobile experience too thin for this role."},
		{1, models.StatusReceived, 85, date(2024, 2, 20),
			[]string{"Strong Node.js and database skills", "Financial services experience"}, "", ""},
		{0, models.StatusHired, 78, date(2024, 3, 10),
			[]string{"AWS and Docker experience", "CI/CD pipeline knowledge"},
			"Hired! Start date April 1.", "Accepted the offer, onboarding booked."},
	}

	for i, sp := range posts {
		min, max := salary(20_000_000, 40_000_000)
		post := &models.Post{
			ID:        uuid.New(),
			AuthorID:  employer.ID,
			Type:      models.PostHiring,
			Title:     sp.title,
			Skills:    sp.skills,
			Location:  sp.location,
			SalaryMin: min,
			SalaryMax: max,
			Deadline:  sp.deadline,
			Status:    sp.status,
			Urgent:    sp.urgent,
			CreatedAt: sp.posted,
			UpdatedAt: sp.posted,
		}
		if err := store.Posts.Create(ctx, post); err != nil {
			return err
		}

		sa := apps[i]
		app := &models.Application{
			ID:           uuid.New(),
			PostID:       post.ID,
			ApplicantID:  seeker.ID,
			CVSnapshot:   models.SnapshotOf(&cvs[sa.cv]),
			Status:       sa.status,
			AppliedAt:    sa.applied,
			LastUpdated:  sa.applied,
			MatchScore:   sa.score,
			AISummary:    sa.summary,
			SeekerNote:   sa.note,
			EmployerNote: sa.empNote,
		}
		if err := store.Applications.Create(ctx, app); err != nil {
			return err
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
