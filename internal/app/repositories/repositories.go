package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProfileRepository      *ProfileRepository
	AvailabilityRepository *AvailabilityRepository
	CreditRepository       *CreditRepository
	CollabRepository       *CollabRepository
	ReportRepository       *ReportRepository
	MuteRepository         *MuteRepository
	StatsRepository        *StatsRepository
	TokenRepository        *TokenRepository
	AuditRepository        *AuditRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProfileRepository:      NewProfileRepository(db),
		AvailabilityRepository: NewAvailabilityRepository(db),
		CreditRepository:       NewCreditRepository(db),
		CollabRepository:       NewCollabRepository(db),
		ReportRepository:       NewReportRepository(db),
		MuteRepository:         NewMuteRepository(db),
		StatsRepository:        NewStatsRepository(db),
		TokenRepository:        NewTokenRepository(db),
		AuditRepository:        NewAuditRepository(db),
	}
}
