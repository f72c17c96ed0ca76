// Package services contains the application logic between the HTTP
// controllers and the repositories. List reads go through a shared snapshot
// cache; mutations run under a per-record dispatch guard and invalidate the
// snapshots they affect.
package services

import (
	"github.com/emin/backlot/internal/app/repositories"
	"github.com/emin/backlot/internal/pkg/auth"
	"github.com/emin/backlot/internal/pkg/dispatch"
	"github.com/emin/backlot/internal/pkg/snapcache"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	AvailabilityService *AvailabilityService
	CreditService       *CreditService
	CommunityService    *CommunityService
}

// NewServices initializes all services over a shared cache and mutation guard
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	cache := snapcache.New()
	guard := dispatch.NewGuard()

	return &Services{
		AuthService: NewAuthService(repos.ProfileRepository, repos.TokenRepository, jwtService),
		AvailabilityService: NewAvailabilityService(
			repos.AvailabilityRepository, repos.AuditRepository, cache, guard),
		CreditService: NewCreditService(
			repos.CreditRepository, repos.AuditRepository, cache, guard),
		CommunityService: NewCommunityService(
			repos.ProfileRepository,
			repos.CollabRepository,
			repos.ReportRepository,
			repos.MuteRepository,
			repos.StatsRepository,
			repos.AuditRepository,
			cache,
		),
	}
}
