package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/controller"
	"github.com/stellarsoil/marketplace/pkg/auth"
)

// SetupProductRoutes registers the product endpoints. Browsing is public;
// listing management requires a farmer account.
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController, jwtService *auth.JWTService) {
	productRouter := router.Group("/products")
	{
		productRouter.GET("", productController.Search)
		productRouter.GET("/:id", productController.Get)
	}

	farmerRouter := router.Group("/products")
	farmerRouter.Use(auth.JWTAuthMiddleware(jwtService))
	farmerRouter.Use(auth.RoleAuthMiddleware("farmer", "admin"))
	{
		farmerRouter.POST("", productController.Create)
		farmerRouter.PUT("/:id", productController.Update)
		farmerRouter.DELETE("/:id", productController.Delete)
	}
}
