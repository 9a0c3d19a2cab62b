package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/dto"
	"github.com/stellarsoil/marketplace/internal/domain/cart"
	"github.com/stellarsoil/marketplace/pkg/assistant"
	"github.com/stellarsoil/marketplace/pkg/auth"
	"github.com/stellarsoil/marketplace/pkg/logger"
)

// CartController handles the authenticated user's cart
type CartController struct {
	cartRepository cart.Repository
	cartService    assistant.CartService
	logger         logger.Logger
}

// NewCartController creates a CartController
func NewCartController(cartRepository cart.Repository, cartService assistant.CartService, log logger.Logger) *CartController {
	return &CartController{
		cartRepository: cartRepository,
		cartService:    cartService,
		logger:         log,
	}
}

// Get returns the user's cart, empty if none exists yet
// @Summary Get the cart
// @Tags cart
// @Produce json
// @Success 200 {object} dto.CartResponse
// @Security BearerAuth
// @Router /cart [get]
func (c *CartController) Get(ctx *gin.Context) {
	userID := auth.CurrentUserID(ctx)
	crt, err := c.cartRepository.FindByUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, cart.ErrNotFound) {
			if crt, err = cart.NewCart(userID); err == nil {
				ctx.JSON(http.StatusOK, dto.ToCartResponse(crt))
				return
			}
		}
		c.logger.Error("failed to fetch cart", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch cart", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(crt))
}

// AddItem merges a product line into the cart
// @Summary Add an item to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.CartItemRequest true "Product and quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cart/items [post]
func (c *CartController) AddItem(ctx *gin.Context) {
	var request dto.CartItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	userID := auth.CurrentUserID(ctx)
	err := c.cartService.AddItem(ctx.Request.Context(), userID, request.ProductID, request.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", ""))
		case errors.Is(err, assistant.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "insufficient stock", ""))
		default:
			c.logger.Error("failed to add cart item", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update cart", ""))
		}
		return
	}

	crt, err := c.cartRepository.FindByUser(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error("failed to reload cart", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch cart", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(crt))
}

// RemoveItem drops a product line from the cart
// @Summary Remove an item from the cart
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cart/items/{productId} [delete]
func (c *CartController) RemoveItem(ctx *gin.Context) {
	userID := auth.CurrentUserID(ctx)
	crt, err := c.cartRepository.FindByUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, cart.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cart is empty", ""))
			return
		}
		c.logger.Error("failed to fetch cart", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch cart", ""))
		return
	}

	crt.Remove(ctx.Param("productId"))
	if err := c.cartRepository.Save(ctx.Request.Context(), crt); err != nil {
		c.logger.Error("failed to save cart", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update cart", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(crt))
}

// Clear empties the cart
// @Summary Clear the cart
// @Tags cart
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Security BearerAuth
// @Router /cart [delete]
func (c *CartController) Clear(ctx *gin.Context) {
	err := c.cartRepository.Delete(ctx.Request.Context(), auth.CurrentUserID(ctx))
	if err != nil && !errors.Is(err, cart.ErrNotFound) {
		c.logger.Error("failed to clear cart", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to clear cart", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cart cleared", nil))
}
