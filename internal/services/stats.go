package services

import (
	"math"

	"github.com/jobook-vn/jobook-api/internal/models"
)

// Stats are the dashboard counters derived from a set of applications. The
// same computation serves the seeker dashboard (their own applications) and
// the employer dashboard (applications against their posts).
type Stats struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	Offers        int `json:"offers"`
	Hired         int `json:"hired"`
	AvgMatchScore int `json:"avg_match_score"`
}

// Summarize computes Stats over apps. AvgMatchScore is the rounded mean and
// is defined as 0 for an empty collection.
func Summarize(apps []models.Application) Stats {
	stats := Stats{Total: len(apps)}
	sum := 0
	for _, app := range apps {
		sum += app.MatchScore
		switch {
		case app.Status.InProgress():
			stats.Active++
		case app.Status == models.StatusOffer:
			stats.Offers++
		case app.Status == models.StatusHired:
			stats.Hired++
		}
	}
	if len(apps) > 0 {
		stats.AvgMatchScore = int(math.Round(float64(sum) / float64(len(apps))))
	}
	return stats
}
