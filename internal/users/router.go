package users

import (
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes configures the admin user-management routes. The session
// and admin gates are injected by the caller.
func SetupUserRoutes(rg *gin.RouterGroup, controller *Controller, sessionAuth, requireAdmin gin.HandlerFunc) {
	admin := rg.Group("/admin")
	admin.Use(sessionAuth, requireAdmin)
	{
		admin.GET("/add_user", controller.ListUsers) // GET  /api/v1/admin/add_user
		admin.POST("/add_user", controller.AddUser)  // POST /api/v1/admin/add_user
	}
}
