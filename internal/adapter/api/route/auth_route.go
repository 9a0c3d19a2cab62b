package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/controller"
)

// SetupAuthRoutes registers the authentication endpoints
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/refresh", authController.Refresh)
	}
}
