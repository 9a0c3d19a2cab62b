package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/controller"
	"github.com/stellarsoil/marketplace/pkg/auth"
)

// SetupChatRoutes registers the conversational assistant endpoints
func SetupChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController, jwtService *auth.JWTService) {
	chatRouter := router.Group("/chat")
	chatRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		chatRouter.POST("/message", chatController.Message)
		chatRouter.POST("/add-to-cart", chatController.AddToCart)
		chatRouter.GET("/nearby-products", chatController.NearbyProducts)
	}
}
