package report

import (
	"strings"
	"time"

	"github.com/vinicu/pmo-jira-yby/internal/domain"
)

// Category rules come from the tracker's workflow labels. Priority matches by
// substring ("Highest" inside the free-text label); statuses match exactly —
// semantically similar statuses do not count.
const (
	priorityCritical = "Highest"
	statusInReview   = "In Review"
	statusInProgress = "In Progress"
	statusDone       = "Done"
)

// Aggregate computes the KPI counters for one run. Pure: identical issues and
// clock always yield an identical summary. Issues with missing priority or
// status labels fall into no category.
func Aggregate(issues []domain.Issue, now time.Time) domain.ReportSummary {
	s := domain.ReportSummary{Total: len(issues), GeneratedAt: now}
	for _, is := range issues {
		if strings.Contains(is.Priority, priorityCritical) {
			s.Critical++
		}
		switch is.Status {
		case statusInReview, statusInProgress:
			s.InRisk++
		case statusDone:
			s.Completed++
		}
	}
	return s
}
