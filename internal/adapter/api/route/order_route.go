package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/controller"
	"github.com/stellarsoil/marketplace/pkg/auth"
)

// SetupOrderRoutes registers the order endpoints
func SetupOrderRoutes(router *gin.RouterGroup, orderController *controller.OrderController, jwtService *auth.JWTService) {
	orderRouter := router.Group("/orders")
	orderRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		orderRouter.POST("", orderController.Create)
		orderRouter.GET("", orderController.List)
		orderRouter.GET("/:id", orderController.Get)
		orderRouter.PATCH("/:id/status", orderController.UpdateStatus)
	}
}
