package models

import "time"

// CreditSubmission defines a claimed production credit based on the
// 'credit_submissions' table. A submission transitions PENDING -> APPROVED
// or PENDING -> REJECTED exactly once; a rejection always carries a note.
type CreditSubmission struct {
	ID            int64        `json:"id" db:"id"`
	SubmitterID   int64        `json:"submitterId" db:"submitter_id"`
	ProductionID  int64        `json:"productionId" db:"production_id"`
	Position      string       `json:"position" db:"position"` // e.g. "Gaffer", "First AD"
	Status        CreditStatus `json:"status" db:"status"`
	RejectionNote *string      `json:"rejectionNote,omitempty" db:"rejection_note"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
	ReviewedAt    *time.Time   `json:"reviewedAt,omitempty" db:"reviewed_at"`
	ReviewedByID  *int64       `json:"reviewedById,omitempty" db:"reviewed_by"`

	// Related entities
	Submitter  *Profile    `json:"submitter,omitempty"`
	Production *Production `json:"production,omitempty"`
}
