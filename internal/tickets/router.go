package tickets

import (
	"eventuraa/internal/accounts"
	"eventuraa/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTicketRoutes configures ticket purchase and history routes
func SetupTicketRoutes(rg *gin.RouterGroup, controller *Controller) {
	tickets := rg.Group("/tickets")
	{
		// Guest checkout is allowed; an authenticated buyer gets the
		// purchase attached to their account
		tickets.POST("/purchase", middleware.OptionalAuth(), controller.Purchase)

		authed := tickets.Group("")
		authed.Use(middleware.JWTAuth())
		{
			authed.GET("/purchases/:id", controller.GetPurchase)
		}
	}

	account := rg.Group("/accounts")
	account.Use(middleware.JWTAuth())
	{
		account.GET("/purchases", controller.GetAccountPurchases)
	}

	organizers := rg.Group("/organizers")
	organizers.Use(middleware.JWTAuth(), middleware.RequireRoles(accounts.RoleOrganizer, accounts.RoleAdmin))
	{
		organizers.GET("/sales", controller.GetOrganizerSales)
	}
}
