package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware creates request logging middleware for Echo using our logger
func EchoMiddleware(logger *AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)
			if err != nil {
				// Let Echo write the response so the logged status is the real one
				c.Error(err)
			}

			if raw != "" {
				path = path + "?" + raw
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			logger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				requestID,
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}
