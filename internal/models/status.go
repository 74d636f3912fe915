package models

import "fmt"

// ApplicationStatus is the stage an application sits at in the hiring pipeline.
type ApplicationStatus string

const (
	// StatusReceived is the initial status of every new application.
	StatusReceived ApplicationStatus = "received"
	// StatusInReview means the employer has opened the application.
	StatusInReview ApplicationStatus = "in_review"
	// StatusInterview means an interview has been scheduled or held.
	StatusInterview ApplicationStatus = "interview"
	// StatusOffer means the employer extended an offer.
	StatusOffer ApplicationStatus = "offer"
	// StatusRejected is terminal; reachable from any non-terminal status.
	StatusRejected ApplicationStatus = "rejected"
	// StatusHired is terminal.
	StatusHired ApplicationStatus = "hired"
)

// pipelineStage orders the forward path received -> in_review -> interview -> offer -> hired.
// Rejected sits outside the pipeline and is handled separately.
var pipelineStage = map[ApplicationStatus]int{
	StatusReceived:  0,
	StatusInReview:  1,
	StatusInterview: 2,
	StatusOffer:     3,
	StatusHired:     4,
}

// AllStatuses lists every valid status, in pipeline order with rejected last.
var AllStatuses = []ApplicationStatus{
	StatusReceived, StatusInReview, StatusInterview, StatusOffer, StatusHired, StatusRejected,
}

func (s ApplicationStatus) Valid() bool {
	if s == StatusRejected {
		return true
	}
	_, ok := pipelineStage[s]
	return ok
}

// Terminal reports whether no further transitions are expected from s.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusHired || s == StatusRejected
}

// InProgress reports whether s belongs to the "active" dashboard bucket
// (received, in_review, interview). Everything else (offer, rejected, hired)
// belongs to the "completed" bucket; the two buckets partition all statuses.
func (s ApplicationStatus) InProgress() bool {
	return s == StatusReceived || s == StatusInReview || s == StatusInterview
}

// ValidateTransition checks an employer-requested status change.
//
// The baseline contract allows any valid status to replace any other, so with
// enforcePipeline false only the target's validity is checked. With
// enforcePipeline true, terminal statuses are frozen and non-rejected moves
// must not step backwards through the pipeline.
func ValidateTransition(from, to ApplicationStatus, enforcePipeline bool) error {
	if !to.Valid() {
		return fmt.Errorf("unknown status %q", to)
	}
	if !enforcePipeline {
		return nil
	}
	if from.Terminal() {
		return fmt.Errorf("application is already %s", from)
	}
	if to == StatusRejected {
		return nil
	}
	if pipelineStage[to] < pipelineStage[from] {
		return fmt.Errorf("cannot move back from %s to %s", from, to)
	}
	return nil
}
