package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/app/models/dto"
	"github.com/emin/backlot/internal/app/services"
	"github.com/emin/backlot/internal/middleware"
	"github.com/emin/backlot/internal/pkg/helpers"
)

// CommunityController handles the community admin lists and the summary
type CommunityController struct {
	communityService *services.CommunityService
	link             dto.LinkBuilder
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService *services.CommunityService, link dto.LinkBuilder) *CommunityController {
	return &CommunityController{
		communityService: communityService,
		link:             link,
	}
}

// ListMembers returns a page of member profiles
// @Summary List members
// @Description Returns a page of member profiles, optionally filtered by a search term
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against username or display name"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Member page"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/community/members [get]
func (c *CommunityController) ListMembers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	search := strings.TrimSpace(ctx.Query("search"))

	profiles, total, err := c.communityService.ListMembers(ctx, search, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      dto.FromAdminProfiles(profiles, c.link),
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// ListCollabs returns a page of collab postings
// @Summary List collabs
// @Description Returns a page of collab postings, optionally filtered by status
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param status query string false "Collab status" Enums(ACTIVE, CLOSED)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Collab page"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/community/collabs [get]
func (c *CommunityController) ListCollabs(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var status *models.CollabStatus
	if raw := ctx.Query("status"); raw != "" {
		parsed := models.CollabStatus(strings.ToUpper(raw))
		if parsed != models.CollabActive && parsed != models.CollabClosed {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid collab status").
				WithField("status").
				WithDetails("Status must be ACTIVE or CLOSED")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		status = &parsed
	}

	collabs, total, err := c.communityService.ListCollabs(ctx, status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      dto.FromCollabs(collabs, c.link),
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// ListReports returns a page of content reports
// @Summary List content reports
// @Description Returns a page of content reports, optionally filtered by status
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param status query string false "Report status" Enums(OPEN, RESOLVED)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Report page"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/community/reports [get]
func (c *CommunityController) ListReports(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var status *models.ReportStatus
	if raw := ctx.Query("status"); raw != "" {
		parsed := models.ReportStatus(strings.ToUpper(raw))
		if parsed != models.ReportOpen && parsed != models.ReportResolved {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid report status").
				WithField("status").
				WithDetails("Status must be OPEN or RESOLVED")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		status = &parsed
	}

	reports, total, err := c.communityService.ListReports(ctx, status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      dto.FromReports(reports, c.link),
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// ListActiveMutes returns the currently active mutes
// @Summary List active mutes
// @Description Returns all mutes that have not expired
// @Tags community
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MuteResponse} "Active mutes"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/community/mutes [get]
func (c *CommunityController) ListActiveMutes(ctx *gin.Context) {
	mutes, err := c.communityService.ListActiveMutes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromMutes(mutes, c.link),
		Timestamp: time.Now(),
	})
}

// GetStats returns the community summary
// @Summary Get community stats
// @Description Returns aggregate community counters; a counter whose query failed is marked unknown
// @Tags community
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.CommunityStats} "Community summary"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Router /admin/community/stats [get]
func (c *CommunityController) GetStats(ctx *gin.Context) {
	stats := c.communityService.GetCommunityStats(ctx)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}

// ListModerationEvents returns the recent audit trail
// @Summary List moderation events
// @Description Returns the most recent moderation actions, newest first
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of events"
// @Success 200 {object} dto.APIResponse{data=[]dto.ModerationEventResponse} "Moderation events"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/community/events [get]
func (c *CommunityController) ListModerationEvents(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		limit = 0
	}

	events, err := c.communityService.ListModerationEvents(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromModerationEvents(events, c.link),
		Timestamp: time.Now(),
	})
}
