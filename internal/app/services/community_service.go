package services

import (
	"context"
	"sync"
	"time"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/pkg/helpers"
	"github.com/emin/backlot/internal/pkg/logger"
	"github.com/emin/backlot/internal/pkg/snapcache"
)

const activeMutesCacheKey = "mutes:active"

const defaultAuditLimit = 50

// ProfileLister lists member profiles for the admin user list
type ProfileLister interface {
	List(ctx context.Context, search string, offset uint64, limit int) ([]*models.Profile, int64, error)
}

// CollabLister lists collab postings for the admin collab list
type CollabLister interface {
	List(ctx context.Context, status *models.CollabStatus, offset uint64, limit int) ([]*models.Collab, int64, error)
}

// ReportLister lists content reports for the admin report list
type ReportLister interface {
	List(ctx context.Context, status *models.ReportStatus, offset uint64, limit int) ([]*models.ContentReport, int64, error)
}

// MuteLister lists currently active mutes
type MuteLister interface {
	GetActive(ctx context.Context) ([]*models.Mute, error)
}

// StatsCounter runs the count queries behind the community summary
type StatsCounter interface {
	CountMembers(ctx context.Context) (int64, error)
	CountActiveCollabs(ctx context.Context) (int64, error)
	CountPendingReports(ctx context.Context) (int64, error)
	CountActiveMutes(ctx context.Context) (int64, error)
}

// AuditLister lists recent moderation events
type AuditLister interface {
	ListRecent(ctx context.Context, limit int) ([]*models.ModerationEvent, error)
}

// CommunityService provides the community admin lists and the aggregate summary
type CommunityService struct {
	profiles ProfileLister
	collabs  CollabLister
	reports  ReportLister
	mutes    MuteLister
	stats    StatsCounter
	audit    AuditLister
	cache    *snapcache.Cache
}

// NewCommunityService creates a new community service
func NewCommunityService(
	profiles ProfileLister,
	collabs CollabLister,
	reports ReportLister,
	mutes MuteLister,
	stats StatsCounter,
	audit AuditLister,
	cache *snapcache.Cache,
) *CommunityService {
	return &CommunityService{
		profiles: profiles,
		collabs:  collabs,
		reports:  reports,
		mutes:    mutes,
		stats:    stats,
		audit:    audit,
		cache:    cache,
	}
}

// ListMembers returns a page of member profiles, optionally filtered by a
// search term matching username or display name
func (s *CommunityService) ListMembers(ctx context.Context, search string, page, size int) ([]*models.Profile, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.profiles.List(ctx, search, offset, limit)
}

// ListCollabs returns a page of collab postings, optionally filtered by status
func (s *CommunityService) ListCollabs(ctx context.Context, status *models.CollabStatus, page, size int) ([]*models.Collab, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.collabs.List(ctx, status, offset, limit)
}

// ListReports returns a page of content reports, optionally filtered by status
func (s *CommunityService) ListReports(ctx context.Context, status *models.ReportStatus, page, size int) ([]*models.ContentReport, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.reports.List(ctx, status, offset, limit)
}

// ListActiveMutes returns the currently active mutes as a cached snapshot
func (s *CommunityService) ListActiveMutes(ctx context.Context) ([]*models.Mute, error) {
	return snapcache.Get(ctx, s.cache, activeMutesCacheKey, func(ctx context.Context) ([]*models.Mute, error) {
		return s.mutes.GetActive(ctx)
	})
}

// ListModerationEvents returns the most recent audit trail entries
func (s *CommunityService) ListModerationEvents(ctx context.Context, limit int) ([]*models.ModerationEvent, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	return s.audit.ListRecent(ctx, limit)
}

// GetCommunityStats computes the community summary. The four counts run
// concurrently and each is isolated: a failed count is reported as unknown
// while the others still carry real values, so the summary never fails as
// a whole.
func (s *CommunityService) GetCommunityStats(ctx context.Context) *models.CommunityStats {
	stats := &models.CommunityStats{GeneratedAt: time.Now()}

	counts := []struct {
		name   string
		target *models.StatCount
		run    func(context.Context) (int64, error)
	}{
		{"members", &stats.Members, s.stats.CountMembers},
		{"activeCollabs", &stats.ActiveCollabs, s.stats.CountActiveCollabs},
		{"pendingReports", &stats.PendingReports, s.stats.CountPendingReports},
		{"activeMutes", &stats.ActiveMutes, s.stats.CountActiveMutes},
	}

	var wg sync.WaitGroup
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			count, err := counts[i].run(ctx)
			if err != nil {
				logger.Warn().Err(err).Str("stat", counts[i].name).Msg("Community stat unavailable")
				return
			}
			*counts[i].target = models.StatCount{Count: count, Known: true}
		}(i)
	}
	wg.Wait()

	return stats
}
