package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/logger"
	"github.com/Phuti24/Singleton-Payment-API/internal/utils"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PanicRecovery recovers from handler panics, logs them with a stack trace
// and answers with a generic 500.
func PanicRecovery(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	if appLogger == nil {
		panic("PanicRecovery requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, appLogger)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, appLogger *logger.AppLogger) {
	req := c.Request()

	appLogger.WithFields(logrus.Fields{
		"panic_value": fmt.Sprintf("%v", r),
		"panic_type":  fmt.Sprintf("%T", r),
		"stack_trace": string(debug.Stack()),
		"method":      req.Method,
		"path":        req.URL.Path,
		"client_ip":   c.RealIP(),
		"user_agent":  req.UserAgent(),
		"request_id":  getRequestID(c),
		"component":   "panic_recovery",
	}).Error("Panic recovered during request processing")

	if !c.Response().Committed {
		if err := utils.InternalServerErrorResponse(c, ""); err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(HeaderRequestID); requestID != "" {
		return requestID
	}
	return c.Request().Header.Get(HeaderRequestID)
}
