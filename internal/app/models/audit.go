package models

import (
	"time"

	"github.com/google/uuid"
)

// ModerationAction identifies the kind of admin mutation recorded in the audit trail
type ModerationAction string

const (
	ActionApproveCredit      ModerationAction = "APPROVE_CREDIT"
	ActionRejectCredit       ModerationAction = "REJECT_CREDIT"
	ActionDeleteAvailability ModerationAction = "DELETE_AVAILABILITY"
)

// ModerationEvent defines an audit trail entry based on the 'moderation_events' table
type ModerationEvent struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	ActorID    int64            `json:"actorId" db:"actor_id"`
	Action     ModerationAction `json:"action" db:"action"`
	TargetType string           `json:"targetType" db:"target_type"`
	TargetID   int64            `json:"targetId" db:"target_id"`
	Note       *string          `json:"note,omitempty" db:"note"`
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`

	// Related entities
	Actor *Profile `json:"actor,omitempty"`
}
