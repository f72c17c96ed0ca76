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

// AvailabilityController handles the admin availability roster
type AvailabilityController struct {
	availabilityService *services.AvailabilityService
	link                dto.LinkBuilder
}

// NewAvailabilityController creates a new AvailabilityController
func NewAvailabilityController(availabilityService *services.AvailabilityService, link dto.LinkBuilder) *AvailabilityController {
	return &AvailabilityController{
		availabilityService: availabilityService,
		link:                link,
	}
}

// ListAvailability returns the availability roster
// @Summary List availability records
// @Description Returns all availability records ordered by start date, soonest first
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AvailabilityResponse} "Availability roster"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/availability [get]
func (c *AvailabilityController) ListAvailability(ctx *gin.Context) {
	records, err := c.availabilityService.ListAvailability(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromAvailabilityRecords(records, c.link),
		Timestamp: time.Now(),
	})
}

// DeleteAvailability removes an availability record
// @Summary Delete an availability record
// @Description Removes an availability record from the roster
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path int true "Availability record ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Record deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid record ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 409 {object} dto.ErrorResponse "Another operation is in progress for this record"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/availability/{id} [delete]
func (c *AvailabilityController) DeleteAvailability(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid availability record ID").
			WithDetails("Record ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actorID, ok := middleware.ProfileIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.availabilityService.DeleteAvailability(ctx, id, actorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Availability record deleted"},
		Timestamp: time.Now(),
	})
}
