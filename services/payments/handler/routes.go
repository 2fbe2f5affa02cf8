package handler

import (
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/middleware"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/Phuti24/Singleton-Payment-API/services/payments"
	httpHandler "github.com/Phuti24/Singleton-Payment-API/services/payments/handler/http"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// Handler wires the payment HTTP handlers to their routes
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
	cfg         *models.Config
	redisClient *redis.Client
}

// NewHandler creates a new combined handler. redisClient may be nil, which
// disables rate limiting.
func NewHandler(paymentUC payments.PaymentUC, cfg *models.Config, redisClient *redis.Client) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(paymentUC),
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// RegisterRoutes registers all payment routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	var initMiddleware []echo.MiddlewareFunc
	if h.redisClient != nil && h.cfg.RateLimit.Requests > 0 {
		initMiddleware = append(initMiddleware,
			middleware.IPRateLimiter(h.cfg.RateLimit.Requests, h.cfg.RateLimit.Period, h.redisClient))
	}

	var listMiddleware []echo.MiddlewareFunc
	if h.cfg.JWT.Secret != "" {
		listMiddleware = append(listMiddleware, middleware.JWTAuthMiddleware(h.cfg.JWT))
	}

	e.POST("/initialize-payment", h.paymentHTTP.InitializePayment, initMiddleware...)

	// The gateway redirects the customer to the query form after checkout.
	e.GET("/verify-payment", h.paymentHTTP.VerifyPaymentQuery)
	e.GET("/verify-payment/:reference", h.paymentHTTP.VerifyPaymentParam)

	e.GET("/transactions", h.paymentHTTP.ListTransactions, listMiddleware...)
}
