package models

import "time"

// Collab defines a collaboration posting based on the 'collabs' table
type Collab struct {
	ID          int64        `json:"id" db:"id"`
	OwnerID     int64        `json:"ownerId" db:"owner_id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Status      CollabStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`

	// Related entities
	Owner *Profile `json:"owner,omitempty"`
}
