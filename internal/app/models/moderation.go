package models

import "time"

// ContentReport defines a member report against platform content based on
// the 'content_reports' table
type ContentReport struct {
	ID         int64            `json:"id" db:"id"`
	ReporterID int64            `json:"reporterId" db:"reporter_id"`
	TargetType ReportTargetType `json:"targetType" db:"target_type"`
	TargetID   int64            `json:"targetId" db:"target_id"`
	Reason     string           `json:"reason" db:"reason"`
	Status     ReportStatus     `json:"status" db:"status"`
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`

	// Related entities
	Reporter *Profile `json:"reporter,omitempty"`
}

// Mute defines a moderation mute based on the 'mutes' table.
// A mute with a nil ExpiresAt, or one in the future, is active.
type Mute struct {
	ID        int64      `json:"id" db:"id"`
	ProfileID int64      `json:"profileId" db:"profile_id"`
	MutedByID int64      `json:"mutedById" db:"muted_by"`
	Reason    string     `json:"reason" db:"reason"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" db:"expires_at"`

	// Related entities
	Profile *Profile `json:"profile,omitempty"`
	MutedBy *Profile `json:"mutedBy,omitempty"`
}
