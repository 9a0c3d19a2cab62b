package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/dto"
	"github.com/stellarsoil/marketplace/internal/domain/product"
	"github.com/stellarsoil/marketplace/pkg/assistant"
	"github.com/stellarsoil/marketplace/pkg/auth"
	"github.com/stellarsoil/marketplace/pkg/logger"
)

// ChatController handles the conversational assistant endpoints
type ChatController struct {
	assistant         *assistant.Service
	cartService       assistant.CartService
	productRepository product.Repository
	logger            logger.Logger
}

// NewChatController creates a ChatController
func NewChatController(assistantService *assistant.Service, cartService assistant.CartService, productRepository product.Repository, log logger.Logger) *ChatController {
	return &ChatController{
		assistant:         assistantService,
		cartService:       cartService,
		productRepository: productRepository,
		logger:            log,
	}
}

// Message processes one chat turn
// @Summary Send a message to the assistant
// @Description Classifies the message, extracts order or listing details and drives the confirmation flow. Echo pendingConfirmation back as pendingToken to confirm or cancel.
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.ChatMessageRequest true "Chat turn"
// @Success 200 {object} assistant.Response
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /chat/message [post]
func (c *ChatController) Message(ctx *gin.Context) {
	var request dto.ChatMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	role := assistant.RoleBuyer
	if auth.CurrentRole(ctx) == "farmer" {
		role = assistant.RoleFarmer
	}

	response := c.assistant.HandleMessage(ctx.Request.Context(), assistant.Request{
		Text:         request.Message,
		Role:         role,
		UserID:       auth.CurrentUserID(ctx),
		PendingToken: request.PendingToken,
		History:      dto.ToHistory(request.History),
	})

	ctx.JSON(http.StatusOK, response)
}

// AddToCart adds a product to the user's cart directly
// @Summary Add a product to the cart
// @Description Adds a quantity of a known product to the authenticated user's cart, merging with an existing line.
// @Tags chat
// @Accept json
// @Produce json
// @Param item body dto.ChatAddToCartRequest true "Product and quantity"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /chat/add-to-cart [post]
func (c *ChatController) AddToCart(ctx *gin.Context) {
	var request dto.ChatAddToCartRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	err := c.cartService.AddItem(ctx.Request.Context(), auth.CurrentUserID(ctx), request.ProductID, request.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", ""))
		case errors.Is(err, assistant.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "insufficient stock", ""))
		case errors.Is(err, assistant.ErrPersistenceUnavailable):
			ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "marketplace temporarily unavailable", ""))
		default:
			c.logger.Error("failed to add to cart", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to add to cart", ""))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("added to cart", nil))
}

// NearbyProducts lists products available around the user
// @Summary List nearby products
// @Description Lists active, in-stock products, optionally filtered by name.
// @Tags chat
// @Produce json
// @Param name query string false "Produce name filter"
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {object} dto.ProductListResponse
// @Security BearerAuth
// @Router /chat/nearby-products [get]
func (c *ChatController) NearbyProducts(ctx *gin.Context) {
	limit := 20
	if v, err := strconv.Atoi(ctx.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	products, err := c.productRepository.Search(ctx.Request.Context(), ctx.Query("name"), limit)
	if err != nil {
		if errors.Is(err, product.ErrStoreOffline) {
			ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "marketplace temporarily unavailable", ""))
			return
		}
		c.logger.Error("failed to list nearby products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list products", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}
