package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/pkg/snapcache"
)

type mockProfileLister struct {
	listFn func(ctx context.Context, search string, offset uint64, limit int) ([]*models.Profile, int64, error)
}

func (m *mockProfileLister) List(ctx context.Context, search string, offset uint64, limit int) ([]*models.Profile, int64, error) {
	return m.listFn(ctx, search, offset, limit)
}

type mockMuteLister struct {
	getActiveFn func(ctx context.Context) ([]*models.Mute, error)
}

func (m *mockMuteLister) GetActive(ctx context.Context) ([]*models.Mute, error) {
	return m.getActiveFn(ctx)
}

type mockStatsCounter struct {
	membersFn func(ctx context.Context) (int64, error)
	collabsFn func(ctx context.Context) (int64, error)
	reportsFn func(ctx context.Context) (int64, error)
	mutesFn   func(ctx context.Context) (int64, error)
}

func (m *mockStatsCounter) CountMembers(ctx context.Context) (int64, error) {
	return m.membersFn(ctx)
}

func (m *mockStatsCounter) CountActiveCollabs(ctx context.Context) (int64, error) {
	return m.collabsFn(ctx)
}

func (m *mockStatsCounter) CountPendingReports(ctx context.Context) (int64, error) {
	return m.reportsFn(ctx)
}

func (m *mockStatsCounter) CountActiveMutes(ctx context.Context) (int64, error) {
	return m.mutesFn(ctx)
}

func fixedCount(count int64) func(ctx context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		return count, nil
	}
}

func TestGetCommunityStatsAllKnown(t *testing.T) {
	service := NewCommunityService(nil, nil, nil, nil, &mockStatsCounter{
		membersFn: fixedCount(120),
		collabsFn: fixedCount(8),
		reportsFn: fixedCount(3),
		mutesFn:   fixedCount(1),
	}, nil, snapcache.New())

	stats := service.GetCommunityStats(context.Background())

	assert.Equal(t, models.StatCount{Count: 120, Known: true}, stats.Members)
	assert.Equal(t, models.StatCount{Count: 8, Known: true}, stats.ActiveCollabs)
	assert.Equal(t, models.StatCount{Count: 3, Known: true}, stats.PendingReports)
	assert.Equal(t, models.StatCount{Count: 1, Known: true}, stats.ActiveMutes)
	assert.False(t, stats.GeneratedAt.IsZero())
}

func TestGetCommunityStatsIsolatesFailedCount(t *testing.T) {
	service := NewCommunityService(nil, nil, nil, nil, &mockStatsCounter{
		membersFn: fixedCount(120),
		collabsFn: func(ctx context.Context) (int64, error) {
			return 0, errors.New("collabs table unreachable")
		},
		reportsFn: fixedCount(3),
		mutesFn:   fixedCount(1),
	}, nil, snapcache.New())

	stats := service.GetCommunityStats(context.Background())

	assert.False(t, stats.ActiveCollabs.Known, "failed count must be reported as unknown")
	assert.True(t, stats.Members.Known)
	assert.True(t, stats.PendingReports.Known)
	assert.True(t, stats.ActiveMutes.Known)
	assert.Equal(t, int64(120), stats.Members.Count)
}

func TestListMembersPagination(t *testing.T) {
	var gotSearch string
	var gotOffset uint64
	var gotLimit int
	profiles := &mockProfileLister{
		listFn: func(ctx context.Context, search string, offset uint64, limit int) ([]*models.Profile, int64, error) {
			gotSearch = search
			gotOffset = offset
			gotLimit = limit
			return []*models.Profile{{ID: 1, Username: "ada"}}, 41, nil
		},
	}
	service := NewCommunityService(profiles, nil, nil, nil, nil, nil, snapcache.New())

	members, total, err := service.ListMembers(context.Background(), "ada", 3, 10)
	assert.NoError(t, err)
	assert.Len(t, members, 1)
	assert.Equal(t, int64(41), total)
	assert.Equal(t, "ada", gotSearch)
	assert.Equal(t, uint64(20), gotOffset)
	assert.Equal(t, 10, gotLimit)
}

func TestListActiveMutesCached(t *testing.T) {
	var loads int32
	mutes := &mockMuteLister{
		getActiveFn: func(ctx context.Context) ([]*models.Mute, error) {
			atomic.AddInt32(&loads, 1)
			return []*models.Mute{{ID: 1}}, nil
		},
	}
	service := NewCommunityService(nil, nil, nil, mutes, nil, nil, snapcache.New())

	first, err := service.ListActiveMutes(context.Background())
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	_, err = service.ListActiveMutes(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}
