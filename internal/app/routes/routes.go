package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emin/backlot/internal/app/controllers"
	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/app/models/dto"
	"github.com/emin/backlot/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	availabilityController *controllers.AvailabilityController,
	creditController *controllers.CreditController,
	communityController *controllers.CommunityController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/logout", authController.Logout)
	}

	// --- Admin routes ---
	// Every admin surface requires an authenticated caller with the admin role
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		availability := admin.Group("/availability")
		{
			availability.GET("", availabilityController.ListAvailability)
			availability.DELETE("/:id", availabilityController.DeleteAvailability)
		}

		credits := admin.Group("/credits")
		{
			credits.GET("/pending", creditController.ListPendingCredits)
			credits.POST("/:id/approve", creditController.ApproveCredit)
			credits.POST("/:id/reject", creditController.RejectCredit)
		}

		community := admin.Group("/community")
		{
			community.GET("/members", communityController.ListMembers)
			community.GET("/collabs", communityController.ListCollabs)
			community.GET("/reports", communityController.ListReports)
			community.GET("/mutes", communityController.ListActiveMutes)
			community.GET("/stats", communityController.GetStats)
			community.GET("/events", communityController.ListModerationEvents)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
