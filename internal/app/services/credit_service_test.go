package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/pkg/apperrors"
	"github.com/emin/backlot/internal/pkg/dispatch"
	"github.com/emin/backlot/internal/pkg/snapcache"
)

type mockCreditStore struct {
	getPendingFn  func(ctx context.Context) ([]*models.CreditSubmission, error)
	getByIDFn     func(ctx context.Context, id int64) (*models.CreditSubmission, error)
	setReviewedFn func(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error
}

func (m *mockCreditStore) GetPending(ctx context.Context) ([]*models.CreditSubmission, error) {
	return m.getPendingFn(ctx)
}

func (m *mockCreditStore) GetByID(ctx context.Context, id int64) (*models.CreditSubmission, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockCreditStore) SetReviewed(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
	return m.setReviewedFn(ctx, id, status, note, reviewerID)
}

func newCreditService(store CreditStore, audit AuditStore) *CreditService {
	return NewCreditService(store, audit, snapcache.New(), dispatch.NewGuard())
}

func TestListPendingCreditsNewestFirstAndCached(t *testing.T) {
	var loads int32
	base := date("2024-01-01")
	store := &mockCreditStore{
		getPendingFn: func(ctx context.Context) ([]*models.CreditSubmission, error) {
			atomic.AddInt32(&loads, 1)
			return []*models.CreditSubmission{
				{ID: 1, CreatedAt: base},
				{ID: 2, CreatedAt: base.Add(time.Hour)},
				{ID: 3, CreatedAt: base.Add(2 * time.Hour)},
			}, nil
		},
	}
	service := newCreditService(store, &mockAuditStore{})

	credits, err := service.ListPendingCredits(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, []int64{credits[0].ID, credits[1].ID, credits[2].ID})

	_, err = service.ListPendingCredits(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestRejectCreditRequiresNote(t *testing.T) {
	stored := false
	store := &mockCreditStore{
		setReviewedFn: func(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
			stored = true
			return nil
		},
	}
	service := newCreditService(store, &mockAuditStore{})

	for _, note := range []string{"", "   ", "\t\n"} {
		err := service.RejectCredit(context.Background(), 5, note, 42)
		assert.ErrorIs(t, err, apperrors.ErrRejectionNoteEmpty)
	}
	assert.False(t, stored, "a blank note must be refused before anything is written")
}

func TestRejectCreditTrimsNote(t *testing.T) {
	var storedNote *string
	store := &mockCreditStore{
		setReviewedFn: func(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
			assert.Equal(t, models.CreditRejected, status)
			storedNote = note
			return nil
		},
	}
	var recorded *models.ModerationEvent
	audit := &mockAuditStore{
		createFn: func(ctx context.Context, event *models.ModerationEvent) error {
			recorded = event
			return nil
		},
	}
	service := newCreditService(store, audit)

	assert.NoError(t, service.RejectCredit(context.Background(), 5, "  duplicate submission  ", 42))

	if assert.NotNil(t, storedNote) {
		assert.Equal(t, "duplicate submission", *storedNote)
	}
	if assert.NotNil(t, recorded) {
		assert.Equal(t, models.ActionRejectCredit, recorded.Action)
		assert.Equal(t, int64(5), recorded.TargetID)
	}
}

func TestApproveCreditInvalidatesSnapshot(t *testing.T) {
	var loads int32
	reviewed := map[int64]bool{}
	base := date("2024-01-01")
	store := &mockCreditStore{
		getPendingFn: func(ctx context.Context) ([]*models.CreditSubmission, error) {
			atomic.AddInt32(&loads, 1)
			credits := []*models.CreditSubmission{}
			if !reviewed[5] {
				credits = append(credits, &models.CreditSubmission{ID: 5, CreatedAt: base})
			}
			return credits, nil
		},
		setReviewedFn: func(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
			assert.Equal(t, models.CreditApproved, status)
			assert.Nil(t, note)
			reviewed[id] = true
			return nil
		},
	}
	service := newCreditService(store, &mockAuditStore{})

	credits, err := service.ListPendingCredits(context.Background())
	assert.NoError(t, err)
	assert.Len(t, credits, 1)

	assert.NoError(t, service.ApproveCredit(context.Background(), 5, 42))

	credits, err = service.ListPendingCredits(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, credits, "approved submission must leave the pending snapshot")
	assert.Equal(t, int32(2), atomic.LoadInt32(&loads))
}

func TestApproveCreditAlreadyReviewedKeepsSnapshot(t *testing.T) {
	var loads int32
	store := &mockCreditStore{
		getPendingFn: func(ctx context.Context) ([]*models.CreditSubmission, error) {
			atomic.AddInt32(&loads, 1)
			return []*models.CreditSubmission{{ID: 5, CreatedAt: date("2024-01-01")}}, nil
		},
		setReviewedFn: func(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
			return apperrors.ErrCreditNotPending
		},
	}
	service := newCreditService(store, &mockAuditStore{})

	_, err := service.ListPendingCredits(context.Background())
	assert.NoError(t, err)

	err = service.ApproveCredit(context.Background(), 5, 42)
	assert.ErrorIs(t, err, apperrors.ErrCreditNotPending)

	_, err = service.ListPendingCredits(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads), "a refused review must not drop the snapshot")
}

func TestCreditReviewRefusesOverlap(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	store := &mockCreditStore{
		setReviewedFn: func(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
			close(started)
			<-release
			return nil
		},
	}
	service := newCreditService(store, &mockAuditStore{})

	done := make(chan error, 1)
	go func() {
		done <- service.ApproveCredit(context.Background(), 5, 42)
	}()

	<-started
	// A reject for the same submission overlaps the running approve
	err := service.RejectCredit(context.Background(), 5, "too late", 43)
	assert.ErrorIs(t, err, apperrors.ErrMutationInFlight)

	close(release)
	assert.NoError(t, <-done)
}
