package domain

import "time"

// Issue is one unit of work returned by the tracker. Only the priority and
// status labels participate in aggregation; the rest is carried for logging.
type Issue struct {
	Key      string
	Summary  string
	Priority string
	Status   string
	Assignee string
}

// ReportSummary holds the KPI counters of a single run. Computed fresh every
// run; never persisted or compared against earlier runs.
type ReportSummary struct {
	Total       int
	Critical    int
	InRisk      int
	Completed   int
	GeneratedAt time.Time
}
