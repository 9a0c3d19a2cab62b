package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/dto"
	"github.com/stellarsoil/marketplace/internal/adapter/repository"
	"github.com/stellarsoil/marketplace/internal/domain/farm"
	"github.com/stellarsoil/marketplace/internal/domain/order"
	"github.com/stellarsoil/marketplace/internal/domain/product"
	"github.com/stellarsoil/marketplace/pkg/auth"
	"github.com/stellarsoil/marketplace/pkg/logger"
)

// OrderController handles order placement and lifecycle
type OrderController struct {
	orderRepository   order.Repository
	productRepository product.Repository
	farmRepository    farm.Repository
	logger            logger.Logger
}

// NewOrderController creates an OrderController
func NewOrderController(orderRepository order.Repository, productRepository product.Repository, farmRepository farm.Repository, log logger.Logger) *OrderController {
	return &OrderController{
		orderRepository:   orderRepository,
		productRepository: productRepository,
		farmRepository:    farmRepository,
		logger:            log,
	}
}

// Create places an order for the authenticated buyer. All items must belong to
// one farm; stock is decremented atomically per line and restored if a later
// step fails.
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.OrderRequest true "Order items"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var request dto.OrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	reqCtx := ctx.Request.Context()
	farmID := ""
	items := make([]order.Item, 0, len(request.Items))
	var decremented []order.Item

	restore := func() {
		for _, it := range decremented {
			if err := c.productRepository.RestoreStock(reqCtx, it.ProductID, it.Quantity); err != nil {
				c.logger.Error("failed to restore stock", "product_id", it.ProductID, "error", err)
			}
		}
	}

	for _, line := range request.Items {
		p, err := c.productRepository.FindByID(reqCtx, line.ProductID)
		if err != nil {
			restore()
			if errors.Is(err, product.ErrNotFound) {
				ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", line.ProductID))
				return
			}
			c.logger.Error("failed to fetch product", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to place order", ""))
			return
		}

		if farmID == "" {
			farmID = p.FarmID
		} else if farmID != p.FarmID {
			restore()
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "all items must belong to a single farm", ""))
			return
		}

		if err := c.productRepository.DecrementStock(reqCtx, p.ID, line.Quantity); err != nil {
			restore()
			if errors.Is(err, product.ErrInsufficient) {
				ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "insufficient stock", p.Name))
				return
			}
			c.logger.Error("failed to decrement stock", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to place order", ""))
			return
		}

		item := order.Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			Unit:        p.Unit,
			UnitPrice:   p.Price,
		}
		decremented = append(decremented, item)
		items = append(items, item)
	}

	o, err := order.NewOrder(auth.CurrentUserID(ctx), farmID, items)
	if err != nil {
		restore()
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid order", err.Error()))
		return
	}

	if err := c.orderRepository.Create(reqCtx, o); err != nil {
		restore()
		c.logger.Error("failed to create order", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to place order", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o))
}

// Get fetches one order, restricted to its buyer or the selling farm's owner
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	o, ok := c.visibleOrder(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// List lists the caller's orders: purchases for buyers, sales for farmers
// @Summary List orders
// @Tags orders
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} dto.OrderListResponse
// @Security BearerAuth
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()
	userID := auth.CurrentUserID(ctx)

	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	p := dto.GetPagination(page, pageSize)

	var (
		orders []*order.Order
		err    error
	)
	if auth.CurrentRole(ctx) == "farmer" {
		f, ferr := c.farmRepository.FindByOwner(reqCtx, userID)
		if ferr != nil {
			if errors.Is(ferr, repository.ErrFarmNotFound) {
				ctx.JSON(http.StatusOK, dto.ToOrderListResponse(nil))
				return
			}
			c.logger.Error("failed to resolve farm", "error", ferr)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list orders", ""))
			return
		}
		orders, err = c.orderRepository.FindByFarm(reqCtx, f.ID, p.PageSize, p.Offset())
	} else {
		orders, err = c.orderRepository.FindByBuyer(reqCtx, userID, p.PageSize, p.Offset())
	}
	if err != nil {
		c.logger.Error("failed to list orders", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list orders", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders))
}

// UpdateStatus advances the order lifecycle. Only the selling farmer moves an
// order forward; the buyer may only cancel while it is still placed.
// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body dto.OrderStatusRequest true "New status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/status [patch]
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	var request dto.OrderStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	next, err := order.ParseStatus(request.Status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid status", request.Status))
		return
	}

	o, ok := c.visibleOrder(ctx)
	if !ok {
		return
	}

	isBuyer := o.BuyerID == auth.CurrentUserID(ctx)
	if isBuyer && next != order.StatusCancelled {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "buyers can only cancel orders", ""))
		return
	}

	if err := o.Transition(next); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid status transition", string(o.Status)+" -> "+string(next)))
		return
	}

	// A cancellation releases the reserved stock
	if next == order.StatusCancelled {
		for _, it := range o.Items {
			if err := c.productRepository.RestoreStock(ctx.Request.Context(), it.ProductID, it.Quantity); err != nil {
				c.logger.Error("failed to restore stock on cancellation", "product_id", it.ProductID, "error", err)
			}
		}
	}

	if err := c.orderRepository.Update(ctx.Request.Context(), o); err != nil {
		c.logger.Error("failed to update order", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update order", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// visibleOrder loads the path order and checks the caller may see it
func (c *OrderController) visibleOrder(ctx *gin.Context) (*order.Order, bool) {
	o, err := c.orderRepository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "order not found", ""))
			return nil, false
		}
		c.logger.Error("failed to fetch order", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch order", ""))
		return nil, false
	}

	userID := auth.CurrentUserID(ctx)
	if o.BuyerID == userID {
		return o, true
	}
	if f, err := c.farmRepository.FindByOwner(ctx.Request.Context(), userID); err == nil && f.ID == o.FarmID {
		return o, true
	}

	ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "you do not have access to this order", ""))
	return nil, false
}
