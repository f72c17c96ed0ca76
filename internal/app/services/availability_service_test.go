package services

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/pkg/apperrors"
	"github.com/emin/backlot/internal/pkg/dispatch"
	"github.com/emin/backlot/internal/pkg/snapcache"
)

type mockAvailabilityStore struct {
	getAllFn  func(ctx context.Context) ([]*models.AvailabilityRecord, error)
	getByIDFn func(ctx context.Context, id int64) (*models.AvailabilityRecord, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockAvailabilityStore) GetAll(ctx context.Context) ([]*models.AvailabilityRecord, error) {
	return m.getAllFn(ctx)
}

func (m *mockAvailabilityStore) GetByID(ctx context.Context, id int64) (*models.AvailabilityRecord, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAvailabilityStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockAuditStore struct {
	createFn func(ctx context.Context, event *models.ModerationEvent) error
}

func (m *mockAuditStore) Create(ctx context.Context, event *models.ModerationEvent) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, event)
}

func newAvailabilityService(store AvailabilityStore, audit AuditStore) *AvailabilityService {
	return NewAvailabilityService(store, audit, snapcache.New(), dispatch.NewGuard())
}

func TestListAvailabilitySortedAndCached(t *testing.T) {
	var loads int32
	store := &mockAvailabilityStore{
		getAllFn: func(ctx context.Context) ([]*models.AvailabilityRecord, error) {
			atomic.AddInt32(&loads, 1)
			return []*models.AvailabilityRecord{
				{ID: 1, StartDate: date("2024-03-01")},
				{ID: 2, StartDate: date("2024-01-15")},
				{ID: 3, StartDate: date("2024-02-10")},
			}, nil
		},
	}
	service := newAvailabilityService(store, &mockAuditStore{})

	records, err := service.ListAvailability(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 1}, []int64{records[0].ID, records[1].ID, records[2].ID})

	_, err = service.ListAvailability(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads), "second read must hit the snapshot")
}

func TestDeleteAvailabilityInvalidatesAndAudits(t *testing.T) {
	var loads int32
	deleted := map[int64]bool{}
	store := &mockAvailabilityStore{
		getAllFn: func(ctx context.Context) ([]*models.AvailabilityRecord, error) {
			atomic.AddInt32(&loads, 1)
			records := []*models.AvailabilityRecord{}
			if !deleted[7] {
				records = append(records, &models.AvailabilityRecord{ID: 7, StartDate: date("2024-01-15")})
			}
			return records, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted[id] = true
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
	service := newAvailabilityService(store, audit)

	records, err := service.ListAvailability(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	assert.NoError(t, service.DeleteAvailability(context.Background(), 7, 42))

	records, err = service.ListAvailability(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, records, "snapshot must be refreshed after a delete")
	assert.Equal(t, int32(2), atomic.LoadInt32(&loads))

	if assert.NotNil(t, recorded) {
		assert.Equal(t, models.ActionDeleteAvailability, recorded.Action)
		assert.Equal(t, int64(42), recorded.ActorID)
		assert.Equal(t, int64(7), recorded.TargetID)
	}
}

func TestDeleteAvailabilityFailureKeepsSnapshot(t *testing.T) {
	var loads int32
	store := &mockAvailabilityStore{
		getAllFn: func(ctx context.Context) ([]*models.AvailabilityRecord, error) {
			atomic.AddInt32(&loads, 1)
			return []*models.AvailabilityRecord{{ID: 7, StartDate: date("2024-01-15")}}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			return apperrors.ErrAvailabilityNotFound
		},
	}
	audited := false
	audit := &mockAuditStore{
		createFn: func(ctx context.Context, event *models.ModerationEvent) error {
			audited = true
			return nil
		},
	}
	service := newAvailabilityService(store, audit)

	_, err := service.ListAvailability(context.Background())
	assert.NoError(t, err)

	err = service.DeleteAvailability(context.Background(), 7, 42)
	assert.ErrorIs(t, err, apperrors.ErrAvailabilityNotFound)
	assert.False(t, audited, "a failed delete must not be audited")

	_, err = service.ListAvailability(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads), "a failed delete must not drop the snapshot")
}

func TestDeleteAvailabilityRefusesOverlap(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	store := &mockAvailabilityStore{
		getAllFn: func(ctx context.Context) ([]*models.AvailabilityRecord, error) {
			return nil, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			close(started)
			<-release
			return nil
		},
	}
	service := newAvailabilityService(store, &mockAuditStore{})

	done := make(chan error, 1)
	go func() {
		done <- service.DeleteAvailability(context.Background(), 7, 42)
	}()

	<-started
	err := service.DeleteAvailability(context.Background(), 7, 42)
	assert.ErrorIs(t, err, apperrors.ErrMutationInFlight)

	close(release)
	assert.NoError(t, <-done)
}
