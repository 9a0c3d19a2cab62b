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
	"github.com/stellarsoil/marketplace/internal/domain/user"
	"github.com/stellarsoil/marketplace/pkg/auth"
	"github.com/stellarsoil/marketplace/pkg/logger"
)

// FarmController handles farm registration and browsing
type FarmController struct {
	farmRepository    farm.Repository
	productRepository product.Repository
	userRepository    user.Repository
	logger            logger.Logger
}

// NewFarmController creates a FarmController
func NewFarmController(farmRepository farm.Repository, productRepository product.Repository, userRepository user.Repository, log logger.Logger) *FarmController {
	return &FarmController{
		farmRepository:    farmRepository,
		productRepository: productRepository,
		userRepository:    userRepository,
		logger:            log,
	}
}

// Create registers the authenticated farmer's farm, one per account
// @Summary Register a farm
// @Tags farms
// @Accept json
// @Produce json
// @Param farm body dto.FarmRequest true "Farm data"
// @Success 201 {object} dto.FarmResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /farms [post]
func (c *FarmController) Create(ctx *gin.Context) {
	var request dto.FarmRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	reqCtx := ctx.Request.Context()
	ownerID := auth.CurrentUserID(ctx)

	if _, err := c.farmRepository.FindByOwner(reqCtx, ownerID); err == nil {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "you already have a registered farm", ""))
		return
	} else if !errors.Is(err, repository.ErrFarmNotFound) {
		c.logger.Error("failed to check existing farm", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to register farm", ""))
		return
	}

	f, err := farm.NewFarm(ownerID, request.Name, request.Description, request.Address, request.Latitude, request.Longitude)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid farm data", err.Error()))
		return
	}

	if err := c.farmRepository.Create(reqCtx, f); err != nil {
		c.logger.Error("failed to create farm", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to register farm", ""))
		return
	}

	// Link the farm back to the owner account so tokens carry the farm id
	if u, err := c.userRepository.FindByID(reqCtx, ownerID); err == nil {
		u.FarmID = f.ID
		u.UpdatedAt = time.Now()
		if err := c.userRepository.Update(reqCtx, u); err != nil {
			c.logger.Warn("failed to link farm to user", "user_id", ownerID, "error", err)
		}
	}

	ctx.JSON(http.StatusCreated, dto.ToFarmResponse(f))
}

// Get fetches one farm by id
// @Summary Get a farm
// @Tags farms
// @Produce json
// @Param id path string true "Farm ID"
// @Success 200 {object} dto.FarmResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /farms/{id} [get]
func (c *FarmController) Get(ctx *gin.Context) {
	f, err := c.farmRepository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "farm not found", ""))
			return
		}
		c.logger.Error("failed to fetch farm", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch farm", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFarmResponse(f))
}

// List lists registered farms
// @Summary List farms
// @Tags farms
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} dto.FarmListResponse
// @Router /farms [get]
func (c *FarmController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	p := dto.GetPagination(page, pageSize)

	farms, err := c.farmRepository.List(ctx.Request.Context(), p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("failed to list farms", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list farms", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFarmListResponse(farms))
}

// Products lists a farm's active listings
// @Summary List a farm's products
// @Tags farms
// @Produce json
// @Param id path string true "Farm ID"
// @Success 200 {object} dto.ProductListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /farms/{id}/products [get]
func (c *FarmController) Products(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()
	if _, err := c.farmRepository.FindByID(reqCtx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "farm not found", ""))
			return
		}
		c.logger.Error("failed to fetch farm", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch farm", ""))
		return
	}

	products, err := c.productRepository.FindByFarm(reqCtx, ctx.Param("id"))
	if err != nil {
		c.logger.Error("failed to list farm products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list products", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// Update modifies the authenticated farmer's farm
// @Summary Update a farm
// @Tags farms
// @Accept json
// @Produce json
// @Param farm body dto.FarmRequest true "Farm data"
// @Success 200 {object} dto.FarmResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /farms/me [put]
func (c *FarmController) Update(ctx *gin.Context) {
	var request dto.FarmRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	f, err := c.farmRepository.FindByOwner(ctx.Request.Context(), auth.CurrentUserID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "no registered farm", ""))
			return
		}
		c.logger.Error("failed to fetch farm", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update farm", ""))
		return
	}

	f.Name = request.Name
	f.Description = request.Description
	f.Address = request.Address
	f.Latitude = request.Latitude
	f.Longitude = request.Longitude
	f.UpdatedAt = time.Now()

	if err := c.farmRepository.Update(ctx.Request.Context(), f); err != nil {
		c.logger.Error("failed to update farm", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update farm", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFarmResponse(f))
}
