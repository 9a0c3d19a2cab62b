package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/controller"
	"github.com/stellarsoil/marketplace/pkg/auth"
)

// SetupFarmRoutes registers the farm endpoints. Browsing is public;
// registration and updates require a farmer account.
func SetupFarmRoutes(router *gin.RouterGroup, farmController *controller.FarmController, jwtService *auth.JWTService) {
	farmRouter := router.Group("/farms")
	{
		farmRouter.GET("", farmController.List)
		farmRouter.GET("/:id", farmController.Get)
		farmRouter.GET("/:id/products", farmController.Products)
	}

	farmerRouter := router.Group("/farms")
	farmerRouter.Use(auth.JWTAuthMiddleware(jwtService))
	farmerRouter.Use(auth.RoleAuthMiddleware("farmer", "admin"))
	{
		farmerRouter.POST("", farmController.Create)
		farmerRouter.PUT("/me", farmController.Update)
	}
}
