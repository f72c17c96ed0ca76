package models

import "time"

// AvailabilityRecord defines a crew availability window based on the
// 'availability_records' table. StartDate <= EndDate is enforced by a
// database check constraint.
type AvailabilityRecord struct {
	ID        int64     `json:"id" db:"id"`
	ProfileID int64     `json:"profileId" db:"profile_id"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
	Notes     *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Profile *Profile `json:"profile,omitempty"`
}
