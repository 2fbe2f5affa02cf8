package http

import (
	"errors"
	"net/http"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/logger"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/Phuti24/Singleton-Payment-API/internal/utils"
	"github.com/Phuti24/Singleton-Payment-API/services/payments"
	"github.com/labstack/echo/v4"
)

const (
	msgInitializeFailed  = "Payment initialization failed"
	msgMissingReference  = "Missing transaction reference"
	msgVerifyFailed      = "Payment verification failed"
	msgListFailed        = "Failed to fetch transactions"
	msgInvalidBodyDetail = "Invalid request body"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// InitializePayment handles POST /initialize-payment
func (h *PaymentHandler) InitializePayment(c echo.Context) error {
	var req models.InitializePaymentRequest
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Invalid initialize payment body", logger.Err(err))
		return utils.ValidationErrorResponseHandler(c, []payments.FieldError{{
			Type:     "field",
			Msg:      msgInvalidBodyDetail,
			Path:     "",
			Location: "body",
		}})
	}

	resp, err := h.paymentUC.InitializePayment(c.Request().Context(), req)
	if err != nil {
		var validationErr *payments.ValidationError
		if errors.As(err, &validationErr) {
			return utils.ValidationErrorResponseHandler(c, validationErr.Fields)
		}
		return utils.InternalServerErrorResponse(c, msgInitializeFailed)
	}

	return c.JSON(http.StatusOK, resp)
}

// VerifyPaymentQuery handles GET /verify-payment?reference=
func (h *PaymentHandler) VerifyPaymentQuery(c echo.Context) error {
	return h.verify(c, c.QueryParam("reference"))
}

// VerifyPaymentParam handles GET /verify-payment/:reference
func (h *PaymentHandler) VerifyPaymentParam(c echo.Context) error {
	return h.verify(c, c.Param("reference"))
}

// verify answers with the gateway payload exactly as it was received
func (h *PaymentHandler) verify(c echo.Context, reference string) error {
	verification, err := h.paymentUC.VerifyPayment(c.Request().Context(), reference)
	if err != nil {
		if errors.Is(err, payments.ErrMissingReference) {
			return utils.BadRequestResponse(c, msgMissingReference)
		}
		return utils.InternalServerErrorResponse(c, msgVerifyFailed)
	}

	return c.JSONBlob(http.StatusOK, verification.Payload)
}

// ListTransactions handles GET /transactions
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.paymentUC.ListTransactions(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, msgListFailed)
	}

	return c.JSON(http.StatusOK, transactions)
}
