package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/pkg/apperrors"
	"github.com/emin/backlot/internal/pkg/dispatch"
	"github.com/emin/backlot/internal/pkg/logger"
	"github.com/emin/backlot/internal/pkg/snapcache"
)

const availabilityCacheKey = "availability"

// AvailabilityStore is the persistence surface the availability service needs
type AvailabilityStore interface {
	GetAll(ctx context.Context) ([]*models.AvailabilityRecord, error)
	GetByID(ctx context.Context, id int64) (*models.AvailabilityRecord, error)
	Delete(ctx context.Context, id int64) error
}

// AuditStore records moderation events
type AuditStore interface {
	Create(ctx context.Context, event *models.ModerationEvent) error
}

// AvailabilityService provides the admin availability roster
type AvailabilityService struct {
	store AvailabilityStore
	audit AuditStore
	cache *snapcache.Cache
	guard *dispatch.Guard
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(store AvailabilityStore, audit AuditStore, cache *snapcache.Cache, guard *dispatch.Guard) *AvailabilityService {
	return &AvailabilityService{
		store: store,
		audit: audit,
		cache: cache,
		guard: guard,
	}
}

// ListAvailability returns all availability records ordered by start date,
// soonest first. The result is a cached snapshot that is refreshed after
// a record is deleted.
func (s *AvailabilityService) ListAvailability(ctx context.Context) ([]*models.AvailabilityRecord, error) {
	return snapcache.Get(ctx, s.cache, availabilityCacheKey, func(ctx context.Context) ([]*models.AvailabilityRecord, error) {
		records, err := s.store.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load availability records: %w", err)
		}
		return SortAvailabilityByStart(records), nil
	})
}

// GetAvailability retrieves a single availability record
func (s *AvailabilityService) GetAvailability(ctx context.Context, id int64) (*models.AvailabilityRecord, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequestError("invalid availability record ID")
	}
	return s.store.GetByID(ctx, id)
}

// DeleteAvailability removes an availability record and invalidates the
// roster snapshot. While a delete for a record is running, a second delete
// for the same record is refused rather than queued.
func (s *AvailabilityService) DeleteAvailability(ctx context.Context, id, actorID int64) error {
	if id <= 0 {
		return apperrors.NewBadRequestError("invalid availability record ID")
	}

	err := s.guard.Do(fmt.Sprintf("availability:%d", id), func() error {
		if err := s.store.Delete(ctx, id); err != nil {
			return err
		}
		s.cache.Invalidate(availabilityCacheKey)
		s.recordDeletion(ctx, actorID, id)
		return nil
	})
	if errors.Is(err, dispatch.ErrInFlight) {
		return apperrors.ErrMutationInFlight
	}
	return err
}

func (s *AvailabilityService) recordDeletion(ctx context.Context, actorID, recordID int64) {
	event := &models.ModerationEvent{
		ActorID:    actorID,
		Action:     models.ActionDeleteAvailability,
		TargetType: "AVAILABILITY",
		TargetID:   recordID,
	}
	if err := s.audit.Create(ctx, event); err != nil {
		// The deletion already happened; a missing audit entry must not undo it
		logger.Error().Err(err).Int64("recordId", recordID).Msg("Failed to record availability deletion")
	}
}
