package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stellarsoil/marketplace/internal/adapter/api/dto"
)

// JWTAuthMiddleware authenticates requests via the Authorization header and
// stores the token claims on the gin context.
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"authentication required",
				"the Authorization header was not provided",
			))
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"invalid token format",
				"use the format 'Bearer <token>'",
			))
			return
		}

		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "invalid token"
			if err == ErrExpiredToken {
				message = "expired token"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Set("user_role", claims.Role)
		c.Set("farm_id", claims.FarmID)

		c.Next()
	}
}

// RoleAuthMiddleware restricts a route to the given roles. It must run after
// JWTAuthMiddleware.
func RoleAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRoleVal, exists := c.Get("user_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"authentication required",
				"",
			))
			return
		}

		userRole, _ := userRoleVal.(string)
		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			http.StatusForbidden,
			"access denied",
			"you do not have permission to access this resource",
		))
	}
}

// CurrentUserID returns the authenticated user id from the context
func CurrentUserID(c *gin.Context) string {
	id, _ := c.Get("user_id")
	idStr, _ := id.(string)
	return idStr
}

// CurrentRole returns the authenticated user's role from the context
func CurrentRole(c *gin.Context) string {
	role, _ := c.Get("user_role")
	roleStr, _ := role.(string)
	return roleStr
}

// CurrentFarmID returns the authenticated farmer's farm id, empty for buyers
func CurrentFarmID(c *gin.Context) string {
	id, _ := c.Get("farm_id")
	idStr, _ := id.(string)
	return idStr
}
