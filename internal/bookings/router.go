package bookings

import (
	"eventuraa/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookings := rg.Group("/bookings")
	{
		// Guest checkout is allowed, so creation only needs optional auth
		bookings.POST("", middleware.OptionalAuth(), controller.CreateBooking)
		bookings.GET("/check-availability/:roomTypeId", controller.CheckAvailability)

		authed := bookings.Group("")
		authed.Use(middleware.JWTAuth())
		{
			authed.GET("/:id", controller.GetBooking)
			authed.PUT("/:id/status", controller.ChangeStatus)
		}
	}

	accountsGroup := rg.Group("/accounts")
	accountsGroup.Use(middleware.JWTAuth())
	{
		accountsGroup.GET("/bookings", controller.GetAccountBookings)
	}
}
