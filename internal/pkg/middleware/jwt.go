package middleware

import (
	"strings"

	jwtpkg "github.com/Phuti24/Singleton-Payment-API/internal/pkg/jwt"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/logger"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/Phuti24/Singleton-Payment-API/internal/utils"
	"github.com/labstack/echo/v4"
)

// ContextKeySubject holds the authenticated token subject
const ContextKeySubject = "subject"

// JWTAuthMiddleware requires a valid Bearer token signed with config.Secret
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config)
			if err != nil {
				logger.WarnCtx(c.Request().Context(), "Rejected bearer token", logger.Err(err))
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if sub, ok := (*claims)["sub"].(string); ok {
				c.Set(ContextKeySubject, sub)
			}

			return next(c)
		}
	}
}
