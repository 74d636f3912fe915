package services

import (
	"strings"

	"github.com/jobook-vn/jobook-api/internal/models"
)

// Tab is the dashboard category filter over the status buckets.
type Tab string

const (
	TabAll       Tab = "all"
	TabActive    Tab = "active"
	TabCompleted Tab = "completed"
)

// StatusFilterAll is the sentinel meaning "do not filter by status".
const StatusFilterAll = "all"

// The three predicates below compose conjunctively; the filter engines apply
// them in sequence but the result is order-independent, and the tests check
// that directly.

// matchesTerm is a case-insensitive substring match over the given fields.
// Which fields are searched is context-specific: the seeker view searches
// post title and company/author, the employer view searches applicant name,
// headline and CV title. An empty term matches everything.
func matchesTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// matchesStatus is an exact status match; empty and "all" disable the filter.
func matchesStatus(filter string, status models.ApplicationStatus) bool {
	if filter == "" || filter == StatusFilterAll {
		return true
	}
	return string(status) == filter
}

// matchesTab tests bucket membership per the active/completed bipartition.
func matchesTab(tab Tab, status models.ApplicationStatus) bool {
	switch tab {
	case TabActive:
		return status.InProgress()
	case TabCompleted:
		return !status.InProgress()
	default:
		return true
	}
}
