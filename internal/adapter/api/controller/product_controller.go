package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/dto"
	"github.com/stellarsoil/marketplace/internal/adapter/repository"
	"github.com/stellarsoil/marketplace/internal/domain/farm"
	"github.com/stellarsoil/marketplace/internal/domain/product"
	"github.com/stellarsoil/marketplace/pkg/auth"
	"github.com/stellarsoil/marketplace/pkg/logger"
)

// ProductController handles product listing management and search
type ProductController struct {
	productRepository product.Repository
	farmRepository    farm.Repository
	logger            logger.Logger
}

// NewProductController creates a ProductController
func NewProductController(productRepository product.Repository, farmRepository farm.Repository, log logger.Logger) *ProductController {
	return &ProductController{
		productRepository: productRepository,
		farmRepository:    farmRepository,
		logger:            log,
	}
}

// Create creates a product listing for the farmer's farm
// @Summary Create a product listing
// @Description Creates a listing under the authenticated farmer's farm.
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Listing data"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	f, err := c.farmRepository.FindByOwner(ctx.Request.Context(), auth.CurrentUserID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "register a farm before listing products", ""))
			return
		}
		c.logger.Error("failed to resolve farm", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to create listing", ""))
		return
	}

	p, err := product.NewProduct(f.ID, request.Name, request.Category, request.Unit, request.Price, request.Stock)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid listing data", err.Error()))
		return
	}
	p.Description = request.Description
	p.Organic = request.Organic

	if err := c.productRepository.Create(ctx.Request.Context(), p); err != nil {
		c.logger.Error("failed to create product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to create listing", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get fetches one product by id
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", ""))
			return
		}
		c.logger.Error("failed to fetch product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch product", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Search lists active, in-stock products
// @Summary Search products
// @Tags products
// @Produce json
// @Param name query string false "Produce name filter"
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {object} dto.ProductListResponse
// @Router /products [get]
func (c *ProductController) Search(ctx *gin.Context) {
	limit := 20
	if v, err := strconv.Atoi(ctx.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	products, err := c.productRepository.Search(ctx.Request.Context(), ctx.Query("name"), limit)
	if err != nil {
		c.logger.Error("failed to search products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to search products", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// Update modifies the farmer's own listing
// @Summary Update a product listing
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.ProductRequest true "Listing data"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	p, ok := c.ownedProduct(ctx)
	if !ok {
		return
	}

	p.Category = request.Category
	p.Description = request.Description
	p.Price = request.Price
	p.Unit = request.Unit
	p.Stock = request.Stock
	p.Organic = request.Organic
	p.UpdatedAt = time.Now()

	if err := c.productRepository.Update(ctx.Request.Context(), p); err != nil {
		c.logger.Error("failed to update product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update listing", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete deactivates the farmer's own listing
// @Summary Remove a product listing
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	p, ok := c.ownedProduct(ctx)
	if !ok {
		return
	}

	if err := c.productRepository.Delete(ctx.Request.Context(), p.ID); err != nil {
		c.logger.Error("failed to delete product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to remove listing", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("listing removed", nil))
}

// ownedProduct loads the path product and verifies the caller's farm owns it
func (c *ProductController) ownedProduct(ctx *gin.Context) (*product.Product, bool) {
	p, err := c.productRepository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", ""))
			return nil, false
		}
		c.logger.Error("failed to fetch product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch product", ""))
		return nil, false
	}

	f, err := c.farmRepository.FindByOwner(ctx.Request.Context(), auth.CurrentUserID(ctx))
	if err != nil || f.ID != p.FarmID {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "you can only manage your own listings", ""))
		return nil, false
	}
	return p, true
}
