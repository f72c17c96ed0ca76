package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/app/services"
	"github.com/emin/backlot/internal/middleware"
	"github.com/emin/backlot/internal/pkg/apperrors"
	"github.com/emin/backlot/internal/pkg/dispatch"
	"github.com/emin/backlot/internal/pkg/snapcache"
)

type stubCreditStore struct {
	getPendingFn  func(ctx context.Context) ([]*models.CreditSubmission, error)
	getByIDFn     func(ctx context.Context, id int64) (*models.CreditSubmission, error)
	setReviewedFn func(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error
}

func (s *stubCreditStore) GetPending(ctx context.Context) ([]*models.CreditSubmission, error) {
	return s.getPendingFn(ctx)
}

func (s *stubCreditStore) GetByID(ctx context.Context, id int64) (*models.CreditSubmission, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCreditStore) SetReviewed(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
	return s.setReviewedFn(ctx, id, status, note, reviewerID)
}

type stubAuditStore struct{}

func (s *stubAuditStore) Create(ctx context.Context, event *models.ModerationEvent) error {
	return nil
}

func creditTestRouter(store services.CreditStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := services.NewCreditService(store, &stubAuditStore{}, snapcache.New(), dispatch.NewGuard())
	controller := NewCreditController(service, func(username string) string {
		return "https://backlot.example/profiles/" + username
	})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextProfileID, int64(42))
	})
	router.GET("/admin/credits/pending", controller.ListPendingCredits)
	router.POST("/admin/credits/:id/approve", controller.ApproveCredit)
	router.POST("/admin/credits/:id/reject", controller.RejectCredit)
	return router
}

func TestRejectCreditMissingNote(t *testing.T) {
	reviewed := false
	router := creditTestRouter(&stubCreditStore{
		setReviewedFn: func(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
			reviewed = true
			return nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/credits/5/reject", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, reviewed, "a rejection without a note must never reach the store")
}

func TestRejectCreditWhitespaceNote(t *testing.T) {
	reviewed := false
	router := creditTestRouter(&stubCreditStore{
		setReviewedFn: func(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
			reviewed = true
			return nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/credits/5/reject", strings.NewReader(`{"note":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
	assert.False(t, reviewed)
}

func TestRejectCreditSuccess(t *testing.T) {
	var gotNote *string
	var gotReviewer int64
	router := creditTestRouter(&stubCreditStore{
		setReviewedFn: func(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
			assert.Equal(t, models.CreditRejected, status)
			gotNote = note
			gotReviewer = reviewerID
			return nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/credits/5/reject", strings.NewReader(`{"note":"duplicate submission"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, gotNote) {
		assert.Equal(t, "duplicate submission", *gotNote)
	}
	assert.Equal(t, int64(42), gotReviewer)
}

func TestApproveCreditAlreadyReviewed(t *testing.T) {
	router := creditTestRouter(&stubCreditStore{
		setReviewedFn: func(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
			return apperrors.ErrCreditNotPending
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/credits/5/approve", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "RES_003")
}

func TestApproveCreditInvalidID(t *testing.T) {
	router := creditTestRouter(&stubCreditStore{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/credits/abc/approve", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPendingCredits(t *testing.T) {
	router := creditTestRouter(&stubCreditStore{
		getPendingFn: func(ctx context.Context) ([]*models.CreditSubmission, error) {
			return []*models.CreditSubmission{
				{
					ID:       5,
					Position: "Gaffer",
					Status:   models.CreditPending,
					Submitter: &models.Profile{
						ID:          9,
						Username:    "ada",
						DisplayName: "Ada",
					},
				},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/credits/pending", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gaffer")
	assert.Contains(t, w.Body.String(), "https://backlot.example/profiles/ada")
}
