package accessrequests

import (
	"github.com/gin-gonic/gin"
)

// SetupAccessRequestRoutes configures the access request routes. The session
// gate is injected by the caller.
func SetupAccessRequestRoutes(rg *gin.RouterGroup, controller *Controller, sessionAuth gin.HandlerFunc) {
	protected := rg.Group("")
	protected.Use(sessionAuth)
	{
		protected.POST("/request", controller.Request) // POST /api/v1/request
		protected.POST("/reply", controller.Reply)     // POST /api/v1/reply
	}
}
