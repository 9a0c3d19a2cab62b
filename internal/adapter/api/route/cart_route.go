package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/controller"
	"github.com/stellarsoil/marketplace/pkg/auth"
)

// SetupCartRoutes registers the cart endpoints
func SetupCartRoutes(router *gin.RouterGroup, cartController *controller.CartController, jwtService *auth.JWTService) {
	cartRouter := router.Group("/cart")
	cartRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		cartRouter.GET("", cartController.Get)
		cartRouter.DELETE("", cartController.Clear)
		cartRouter.POST("/items", cartController.AddItem)
		cartRouter.DELETE("/items/:productId", cartController.RemoveItem)
	}
}
