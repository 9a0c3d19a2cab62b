package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/dto"
	"github.com/stellarsoil/marketplace/internal/adapter/repository"
	"github.com/stellarsoil/marketplace/internal/domain/user"
	"github.com/stellarsoil/marketplace/pkg/auth"
	"github.com/stellarsoil/marketplace/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// AuthController handles registration, login and token refresh
type AuthController struct {
	userRepository user.Repository
	jwtService     *auth.JWTService
	logger         logger.Logger
}

// NewAuthController creates an AuthController
func NewAuthController(userRepository user.Repository, jwtService *auth.JWTService, log logger.Logger) *AuthController {
	return &AuthController{
		userRepository: userRepository,
		jwtService:     jwtService,
		logger:         log,
	}
}

// Register creates a new account
// @Summary Register an account
// @Description Creates a buyer or farmer account and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body dto.RegisterRequest true "Account data"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.logger.Error("failed to hash password", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to process password", ""))
		return
	}

	u, err := user.NewUser(request.Name, request.Email, string(hash), user.Role(request.Role))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid account data", err.Error()))
		return
	}
	u.Phone = request.Phone
	u.Address = request.Address

	if err := c.userRepository.Create(ctx.Request.Context(), u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "an account with this email already exists", ""))
			return
		}
		c.logger.Error("failed to create user", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to create account", ""))
		return
	}

	c.issueToken(ctx, http.StatusCreated, u)
}

// Login authenticates an account
// @Summary Log in
// @Description Verifies credentials and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	u, err := c.userRepository.FindByEmail(ctx.Request.Context(), request.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "invalid email or password", ""))
			return
		}
		c.logger.Error("failed to look up user", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "login failed", ""))
		return
	}

	if !u.Active {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "account is deactivated", ""))
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(request.Password)) != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "invalid email or password", ""))
		return
	}

	c.issueToken(ctx, http.StatusOK, u)
}

// Refresh renews an access token
// @Summary Refresh a token
// @Description Reissues the access token with a fresh expiration.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Current token"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var request dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	newToken, err := c.jwtService.RefreshToken(request.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "could not refresh token", err.Error()))
		return
	}

	claims, err := c.jwtService.ValidateToken(newToken)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "could not refresh token", ""))
		return
	}

	u, err := c.userRepository.FindByID(ctx.Request.Context(), claims.UserID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "account no longer exists", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		Token:     newToken,
		ExpiresIn: claims.ExpiresAt.Unix() - claims.IssuedAt.Unix(),
		User:      dto.ToUserResponse(u),
	})
}

func (c *AuthController) issueToken(ctx *gin.Context, status int, u *user.User) {
	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("failed to generate token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to issue token", ""))
		return
	}

	claims, _ := c.jwtService.ValidateToken(token)
	expiresIn := int64(0)
	if claims != nil {
		expiresIn = claims.ExpiresAt.Unix() - claims.IssuedAt.Unix()
	}

	ctx.JSON(status, dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.ToUserResponse(u),
	})
}
