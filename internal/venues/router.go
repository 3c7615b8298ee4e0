package venues

import (
	"eventuraa/internal/accounts"
	"eventuraa/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupVenueRoutes configures all venue inventory routes
func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller) {
	venues := rg.Group("/venues")
	{
		// Public reads
		venues.GET("", controller.ListVenues)
		venues.GET("/:id", controller.GetVenue)
		venues.GET("/:id/room-types", controller.ListRoomTypes)

		// Host/admin mutations
		managed := venues.Group("")
		managed.Use(middleware.JWTAuth(), middleware.RequireRoles(accounts.RoleHost, accounts.RoleAdmin))
		{
			managed.POST("", controller.CreateVenue)
			managed.PUT("/:id", controller.UpdateVenue)
			managed.POST("/:id/room-types", controller.CreateRoomType)
		}
	}

	roomTypes := rg.Group("/room-types")
	{
		roomTypes.GET("/:id/rooms", controller.ListRooms)

		managed := roomTypes.Group("")
		managed.Use(middleware.JWTAuth(), middleware.RequireRoles(accounts.RoleHost, accounts.RoleAdmin))
		{
			managed.POST("/:id/rooms", controller.CreateRoom)
		}
	}

	rooms := rg.Group("/rooms")
	rooms.Use(middleware.JWTAuth(), middleware.RequireRoles(accounts.RoleHost, accounts.RoleAdmin))
	{
		rooms.PUT("/:id/status", controller.UpdateRoomStatus)
	}

	admin := rg.Group("/admin/venues")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.PUT("/:id/approval", controller.ApproveVenue)
	}
}
