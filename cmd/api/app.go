package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/stellarsoil/marketplace/docs"
	"github.com/stellarsoil/marketplace/internal/adapter/api/controller"
	"github.com/stellarsoil/marketplace/internal/adapter/api/route"
	"github.com/stellarsoil/marketplace/internal/adapter/repository"
	"github.com/stellarsoil/marketplace/internal/infrastructure/database"
	"github.com/stellarsoil/marketplace/pkg/assistant"
	"github.com/stellarsoil/marketplace/pkg/auth"
	"github.com/stellarsoil/marketplace/pkg/logger"
	"github.com/stellarsoil/marketplace/pkg/pricing"
)

// App holds the application and its wired dependencies
type App struct {
	router     *gin.Engine
	db         *pgxpool.Pool
	logger     logger.Logger
	jwtService *auth.JWTService

	authController    *controller.AuthController
	chatController    *controller.ChatController
	productController *controller.ProductController
	orderController   *controller.OrderController
	cartController    *controller.CartController
	farmController    *controller.FarmController
}

// NewApp builds the application graph: database, repositories, the assistant
// pipeline and the HTTP controllers.
func NewApp() (*App, error) {
	log := logger.NewLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	db, err := database.NewPostgresPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)

	// Assistant pipeline
	catalog := repository.NewCatalogAdapter(productRepo, farmRepo)
	orders := repository.NewOrderAdapter(orderRepo)
	listings := repository.NewListingAdapter(productRepo, farmRepo)
	carts := repository.NewCartAdapter(cartRepo, productRepo)
	prices := pricing.NewService(log)

	secret := os.Getenv("PENDING_ACTION_SECRET")
	if secret == "" {
		secret = os.Getenv("JWT_SECRET_KEY")
	}
	codec := assistant.NewTokenCodec([]byte(secret), pendingTokenTTL())
	executor := assistant.NewExecutor(catalog, orders, listings, carts, prices, log)
	assistantService := assistant.NewService(codec, executor, catalog, log)

	// Controllers
	authController := controller.NewAuthController(userRepo, jwtService, log)
	chatController := controller.NewChatController(assistantService, carts, productRepo, log)
	productController := controller.NewProductController(productRepo, farmRepo, log)
	orderController := controller.NewOrderController(orderRepo, productRepo, farmRepo, log)
	cartController := controller.NewCartController(cartRepo, carts, log)
	farmController := controller.NewFarmController(farmRepo, productRepo, userRepo, log)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	return &App{
		router:            router,
		db:                db,
		logger:            log,
		jwtService:        jwtService,
		authController:    authController,
		chatController:    chatController,
		productController: productController,
		orderController:   orderController,
		cartController:    cartController,
		farmController:    farmController,
	}, nil
}

// SetupRoutes registers all HTTP routes under basePath
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	api.GET("/health", func(c *gin.Context) {
		status := "ok"
		code := 200
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := a.db.Ping(ctx); err != nil {
			status = "degraded"
			code = 503
		}
		c.JSON(code, gin.H{"status": status, "version": "1.0.0"})
	})

	route.SetupAuthRoutes(api, a.authController)
	route.SetupChatRoutes(api, a.chatController, a.jwtService)
	route.SetupProductRoutes(api, a.productController, a.jwtService)
	route.SetupOrderRoutes(api, a.orderController, a.jwtService)
	route.SetupCartRoutes(api, a.cartController, a.jwtService)
	route.SetupFarmRoutes(api, a.farmController, a.jwtService)

	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start runs the HTTP server
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	a.logger.Info("starting server", "port", port)
	return a.router.Run(":" + port)
}

// Close releases application resources
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

func pendingTokenTTL() time.Duration {
	if v := os.Getenv("PENDING_ACTION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 10 * time.Minute
}

func corsOrigins() []string {
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		return []string{v}
	}
	return []string{"http://localhost:3000"}
}
