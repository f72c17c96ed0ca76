package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/pkg/apperrors"
	"github.com/emin/backlot/internal/pkg/dispatch"
	"github.com/emin/backlot/internal/pkg/logger"
	"github.com/emin/backlot/internal/pkg/snapcache"
)

const pendingCreditsCacheKey = "credits:pending"

// CreditStore is the persistence surface the credit service needs
type CreditStore interface {
	GetPending(ctx context.Context) ([]*models.CreditSubmission, error)
	GetByID(ctx context.Context, id int64) (*models.CreditSubmission, error)
	SetReviewed(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error
}

// CreditService handles the admin review queue for credit submissions
type CreditService struct {
	store CreditStore
	audit AuditStore
	cache *snapcache.Cache
	guard *dispatch.Guard
}

// NewCreditService creates a new credit service
func NewCreditService(store CreditStore, audit AuditStore, cache *snapcache.Cache, guard *dispatch.Guard) *CreditService {
	return &CreditService{
		store: store,
		audit: audit,
		cache: cache,
		guard: guard,
	}
}

// ListPendingCredits returns all submissions awaiting review, newest first.
// The result is a cached snapshot that is refreshed after a review decision.
func (s *CreditService) ListPendingCredits(ctx context.Context) ([]*models.CreditSubmission, error) {
	return snapcache.Get(ctx, s.cache, pendingCreditsCacheKey, func(ctx context.Context) ([]*models.CreditSubmission, error) {
		credits, err := s.store.GetPending(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load pending credit submissions: %w", err)
		}
		return SortCreditsByNewest(credits), nil
	})
}

// GetCredit retrieves a single credit submission
func (s *CreditService) GetCredit(ctx context.Context, id int64) (*models.CreditSubmission, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequestError("invalid credit submission ID")
	}
	return s.store.GetByID(ctx, id)
}

// ApproveCredit marks a pending submission as approved
func (s *CreditService) ApproveCredit(ctx context.Context, id, reviewerID int64) error {
	return s.review(ctx, id, models.CreditApproved, nil, reviewerID, models.ActionApproveCredit)
}

// RejectCredit marks a pending submission as rejected. The note is required;
// a blank or whitespace-only note is refused before anything is written.
func (s *CreditService) RejectCredit(ctx context.Context, id int64, note string, reviewerID int64) error {
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return apperrors.ErrRejectionNoteEmpty
	}
	return s.review(ctx, id, models.CreditRejected, &trimmed, reviewerID, models.ActionRejectCredit)
}

// review applies a decision to a pending submission. The store only updates
// rows still in the pending state, so a submission that was reviewed in the
// meantime fails here with ErrCreditNotPending and the snapshot stays intact.
func (s *CreditService) review(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64, action models.ModerationAction) error {
	if id <= 0 {
		return apperrors.NewBadRequestError("invalid credit submission ID")
	}

	err := s.guard.Do(fmt.Sprintf("credit:%d", id), func() error {
		if err := s.store.SetReviewed(ctx, id, status, note, reviewerID); err != nil {
			return err
		}
		s.cache.Invalidate(pendingCreditsCacheKey)

		event := &models.ModerationEvent{
			ActorID:    reviewerID,
			Action:     action,
			TargetType: "CREDIT",
			TargetID:   id,
			Note:       note,
		}
		if err := s.audit.Create(ctx, event); err != nil {
			logger.Error().Err(err).Int64("creditId", id).Msg("Failed to record credit review")
		}
		return nil
	})
	if errors.Is(err, dispatch.ErrInFlight) {
		return apperrors.ErrMutationInFlight
	}
	return err
}
