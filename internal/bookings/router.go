package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures the dashboard and booking routes. The
// session gate is injected by the caller.
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, sessionAuth gin.HandlerFunc) {
	protected := rg.Group("")
	protected.Use(sessionAuth)
	{
		protected.GET("/dashboard", controller.Dashboard) // GET  /api/v1/dashboard
		protected.POST("/book", controller.Book)          // POST /api/v1/book
		protected.POST("/cancel", controller.Cancel)      // POST /api/v1/cancel
	}
}
