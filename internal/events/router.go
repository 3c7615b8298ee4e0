package events

import (
	"eventuraa/internal/accounts"
	"eventuraa/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupEventRoutes configures event catalog routes
func SetupEventRoutes(rg *gin.RouterGroup, controller *Controller) {
	events := rg.Group("/events")
	{
		// Public reads
		events.GET("", controller.ListEvents)
		events.GET("/:id", controller.GetEvent)

		// Organizer/admin mutations
		managed := events.Group("")
		managed.Use(middleware.JWTAuth(), middleware.RequireRoles(accounts.RoleOrganizer, accounts.RoleAdmin))
		{
			managed.POST("", controller.CreateEvent)
		}
	}

	admin := rg.Group("/admin/events")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.PUT("/:id/status", controller.UpdateEventStatus)
	}
}
