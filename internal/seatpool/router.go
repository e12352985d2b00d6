package seatpool

import (
	"github.com/gin-gonic/gin"
)

// SetupSeatPoolRoutes configures the admin pool-management routes. The
// session and admin gates are injected by the caller.
func SetupSeatPoolRoutes(rg *gin.RouterGroup, controller *Controller, sessionAuth, requireAdmin gin.HandlerFunc) {
	admin := rg.Group("/admin")
	admin.Use(sessionAuth, requireAdmin)
	{
		admin.POST("/reset_tickets", controller.ResetTickets) // POST /api/v1/admin/reset_tickets
		admin.POST("/set_tickets", controller.SetTickets)     // POST /api/v1/admin/set_tickets
	}
}
