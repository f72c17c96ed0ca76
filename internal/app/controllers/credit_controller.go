package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emin/backlot/internal/app/models/dto"
	"github.com/emin/backlot/internal/app/services"
	"github.com/emin/backlot/internal/middleware"
)

// CreditController handles the pending credit review queue
type CreditController struct {
	creditService *services.CreditService
	link          dto.LinkBuilder
}

// NewCreditController creates a new CreditController
func NewCreditController(creditService *services.CreditService, link dto.LinkBuilder) *CreditController {
	return &CreditController{
		creditService: creditService,
		link:          link,
	}
}

// ListPendingCredits returns the review queue
// @Summary List pending credit submissions
// @Description Returns all credit submissions awaiting review, newest first
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CreditResponse} "Pending submissions"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/credits/pending [get]
func (c *CreditController) ListPendingCredits(ctx *gin.Context) {
	credits, err := c.creditService.ListPendingCredits(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromCreditSubmissions(credits, c.link),
		Timestamp: time.Now(),
	})
}

// ApproveCredit approves a pending submission
// @Summary Approve a credit submission
// @Description Marks a pending credit submission as approved
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credit submission ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Submission approved"
// @Failure 400 {object} dto.ErrorResponse "Invalid submission ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Failure 409 {object} dto.ErrorResponse "Submission already reviewed or operation in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/credits/{id}/approve [post]
func (c *CreditController) ApproveCredit(ctx *gin.Context) {
	id, reviewerID, ok := c.reviewParams(ctx)
	if !ok {
		return
	}

	if err := c.creditService.ApproveCredit(ctx, id, reviewerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Credit submission approved"},
		Timestamp: time.Now(),
	})
}

// RejectCredit rejects a pending submission with a mandatory note
// @Summary Reject a credit submission
// @Description Marks a pending credit submission as rejected; a justification note is required
// @Tags credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credit submission ID"
// @Param request body dto.RejectCreditRequest true "Rejection note"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Submission rejected"
// @Failure 400 {object} dto.ErrorResponse "Invalid submission ID or missing note"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Failure 409 {object} dto.ErrorResponse "Submission already reviewed or operation in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/credits/{id}/reject [post]
func (c *CreditController) RejectCredit(ctx *gin.Context) {
	id, reviewerID, ok := c.reviewParams(ctx)
	if !ok {
		return
	}

	var req dto.RejectCreditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A rejection note is required").
			WithField("note").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.creditService.RejectCredit(ctx, id, req.Note, reviewerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Credit submission rejected"},
		Timestamp: time.Now(),
	})
}

func (c *CreditController) reviewParams(ctx *gin.Context) (id, reviewerID int64, ok bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid credit submission ID").
			WithDetails("Submission ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, 0, false
	}

	reviewerID, found := middleware.ProfileIDFromContext(ctx)
	if !found {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, 0, false
	}

	return id, reviewerID, true
}
