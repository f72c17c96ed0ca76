package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/app/services"
	"github.com/emin/backlot/internal/middleware"
	"github.com/emin/backlot/internal/pkg/apperrors"
	"github.com/emin/backlot/internal/pkg/dispatch"
	"github.com/emin/backlot/internal/pkg/snapcache"
)

type stubAvailabilityStore struct {
	getAllFn  func(ctx context.Context) ([]*models.AvailabilityRecord, error)
	getByIDFn func(ctx context.Context, id int64) (*models.AvailabilityRecord, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubAvailabilityStore) GetAll(ctx context.Context) ([]*models.AvailabilityRecord, error) {
	return s.getAllFn(ctx)
}

func (s *stubAvailabilityStore) GetByID(ctx context.Context, id int64) (*models.AvailabilityRecord, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubAvailabilityStore) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func availabilityTestRouter(store services.AvailabilityStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := services.NewAvailabilityService(store, &stubAuditStore{}, snapcache.New(), dispatch.NewGuard())
	controller := NewAvailabilityController(service, func(username string) string {
		return "https://backlot.example/profiles/" + username
	})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextProfileID, int64(42))
	})
	router.GET("/admin/availability", controller.ListAvailability)
	router.DELETE("/admin/availability/:id", controller.DeleteAvailability)
	return router
}

func mustDate(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestListAvailabilityOrderedByStart(t *testing.T) {
	router := availabilityTestRouter(&stubAvailabilityStore{
		getAllFn: func(ctx context.Context) ([]*models.AvailabilityRecord, error) {
			return []*models.AvailabilityRecord{
				{ID: 1, StartDate: mustDate("2024-03-01"), EndDate: mustDate("2024-03-05")},
				{ID: 2, StartDate: mustDate("2024-01-15"), EndDate: mustDate("2024-01-20")},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/availability", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Less(t, strings.Index(body, "2024-01-15"), strings.Index(body, "2024-03-01"),
		"roster must be ordered soonest first")
}

func TestDeleteAvailabilityNotFound(t *testing.T) {
	router := availabilityTestRouter(&stubAvailabilityStore{
		deleteFn: func(ctx context.Context, id int64) error {
			return apperrors.ErrAvailabilityNotFound
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/admin/availability/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RES_001")
}

func TestDeleteAvailabilityInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	router := availabilityTestRouter(&stubAvailabilityStore{
		deleteFn: func(ctx context.Context, id int64) error {
			close(started)
			<-release
			return nil
		},
	})

	firstDone := make(chan int, 1)
	go func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/admin/availability/7", nil)
		router.ServeHTTP(w, req)
		firstDone <- w.Code
	}()

	<-started
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/admin/availability/7", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "RES_004")

	close(release)
	assert.Equal(t, http.StatusOK, <-firstDone)
}

func TestDeleteAvailabilityInvalidID(t *testing.T) {
	router := availabilityTestRouter(&stubAvailabilityStore{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/admin/availability/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
