package models

import "time"

// StatCount is a single community counter. Known is false when the
// underlying count query failed; the count is then meaningless and the
// caller should display it as unknown rather than zero.
type StatCount struct {
	Count int64 `json:"count"`
	Known bool  `json:"known"`
}

// CommunityStats is a read-time projection over the community tables.
// It has no identity and is never persisted; it is recomputed on every read.
type CommunityStats struct {
	Members        StatCount `json:"members"`
	ActiveCollabs  StatCount `json:"activeCollabs"`
	PendingReports StatCount `json:"pendingReports"`
	ActiveMutes    StatCount `json:"activeMutes"`
	GeneratedAt    time.Time `json:"generatedAt"`
}
