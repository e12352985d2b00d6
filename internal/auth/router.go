package auth

import (
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configures the public login route.
func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/login", controller.Login) // POST /api/v1/login
}
