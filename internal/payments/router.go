package payments

import (
	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes configures the payment routes. The session gate is
// injected by the caller.
func SetupPaymentRoutes(rg *gin.RouterGroup, controller *Controller, sessionAuth gin.HandlerFunc) {
	payment := rg.Group("/payment")
	payment.Use(sessionAuth)
	{
		payment.GET("/:id", controller.GetPayments) // GET  /api/v1/payment/:id
		payment.POST("/:id", controller.Pay)        // POST /api/v1/payment/:id
	}
}
