package models

// RoleType defines the profile role type
type RoleType string

const (
	RoleMember RoleType = "MEMBER"
	RoleAdmin  RoleType = "ADMIN"
)

// CreditStatus defines the review state of a credit submission
type CreditStatus string

const (
	CreditPending  CreditStatus = "PENDING"
	CreditApproved CreditStatus = "APPROVED"
	CreditRejected CreditStatus = "REJECTED"
)

// CollabStatus defines the lifecycle state of a collab posting
type CollabStatus string

const (
	CollabActive CollabStatus = "ACTIVE"
	CollabClosed CollabStatus = "CLOSED"
)

// ReportStatus defines the lifecycle state of a content report
type ReportStatus string

const (
	ReportOpen     ReportStatus = "OPEN"
	ReportResolved ReportStatus = "RESOLVED"
)

// ReportTargetType identifies what kind of content a report points at
type ReportTargetType string

const (
	ReportTargetProfile ReportTargetType = "PROFILE"
	ReportTargetCollab  ReportTargetType = "COLLAB"
	ReportTargetCredit  ReportTargetType = "CREDIT"
)
