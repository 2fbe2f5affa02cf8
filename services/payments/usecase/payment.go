package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/logger"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/Phuti24/Singleton-Payment-API/internal/utils"
	"github.com/Phuti24/Singleton-Payment-API/services/payments"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const maxLoggedBody = 512

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// paymentUC implements payments.PaymentUC
type paymentUC struct {
	cfg      *models.Config
	repo     payments.TransactionRepo
	gateway  payments.PaymentGW
	events   payments.EventGW
	validate *validator.Validate
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	repo payments.TransactionRepo,
	gateway payments.PaymentGW,
	events payments.EventGW,
) payments.PaymentUC {
	return &paymentUC{
		cfg:      cfg,
		repo:     repo,
		gateway:  gateway,
		events:   events,
		validate: validator.New(),
	}
}

// InitializePayment validates the request, opens a gateway session and stores
// a pending transaction under the gateway's reference.
func (uc *paymentUC) InitializePayment(ctx context.Context, req models.InitializePaymentRequest) (*models.InitializePaymentResponse, error) {
	amount, err := uc.validateInitialize(req)
	if err != nil {
		logger.WarnCtx(ctx, "Rejected payment initialization", logger.Err(err))
		return nil, err
	}

	session, err := uc.gateway.InitializePayment(ctx, req.Email, amount, models.DefaultCurrency, uc.cfg.Paystack.CallbackURL)
	if err != nil {
		uc.logGatewayError(ctx, "Payment initialization failed at gateway", err)
		return nil, err
	}

	tx := &models.Transaction{
		Reference:     session.Reference,
		Amount:        amount,
		Currency:      models.DefaultCurrency,
		Status:        models.TransactionStatusPending,
		CustomerEmail: req.Email,
	}
	if err := uc.repo.Insert(ctx, tx); err != nil {
		// The gateway session already exists; nothing is rolled back.
		logger.ErrorCtx(ctx, "Failed to store initialized transaction, gateway session left without a local record",
			logger.String("reference", session.Reference),
			logger.Bool("constraint", payments.IsConstraintError(err)),
			logger.Err(err))
		return nil, err
	}

	logger.InfoCtx(ctx, "Payment initialized",
		logger.String("reference", tx.Reference),
		logger.Int64("amount", tx.Amount),
		logger.String("currency", tx.Currency),
		logger.String("customer_email", utils.MaskEmail(tx.CustomerEmail)))

	event := models.PaymentInitializedEvent{
		Reference:     tx.Reference,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Status:        tx.Status,
		CustomerEmail: tx.CustomerEmail,
		OccurredAt:    time.Now().UTC(),
	}
	if err := uc.events.PublishPaymentInitialized(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish payment initialized event",
			logger.String("reference", tx.Reference),
			logger.Err(err))
	}

	return &models.InitializePaymentResponse{AuthorizationURL: session.AuthorizationURL}, nil
}

// VerifyPayment asks the gateway for the outcome of reference and copies the
// reported status onto the stored transaction.
func (uc *paymentUC) VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, payments.ErrMissingReference
	}

	verification, err := uc.gateway.VerifyPayment(ctx, reference)
	if err != nil {
		uc.logGatewayError(ctx, "Payment verification failed at gateway", err, logger.String("reference", reference))
		return nil, err
	}
	if verification.Status == "" {
		err := &payments.GatewayError{Op: "verify", StatusCode: 200, Body: string(verification.Payload), Err: errors.New("verification payload has no status")}
		uc.logGatewayError(ctx, "Payment verification failed at gateway", err, logger.String("reference", reference))
		return nil, err
	}

	rows, err := uc.repo.UpdateStatusByReference(ctx, reference, verification.Status)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to update transaction status",
			logger.String("reference", reference),
			logger.String("status", verification.Status),
			logger.Err(err))
		return nil, err
	}
	if rows == 0 {
		logger.WarnCtx(ctx, "Verified reference has no stored transaction",
			logger.String("reference", reference),
			logger.String("status", verification.Status))
	} else {
		logger.InfoCtx(ctx, "Payment verified",
			logger.String("reference", reference),
			logger.String("status", verification.Status))
	}

	event := models.PaymentVerifiedEvent{
		Reference:   reference,
		Status:      verification.Status,
		RowsUpdated: rows,
		OccurredAt:  time.Now().UTC(),
	}
	if err := uc.events.PublishPaymentVerified(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish payment verified event",
			logger.String("reference", reference),
			logger.Err(err))
	}

	return verification, nil
}

// ListTransactions returns every stored transaction
func (uc *paymentUC) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	transactions, err := uc.repo.ListAll(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to list transactions", logger.Err(err))
		return nil, err
	}
	return transactions, nil
}

// validateInitialize checks both fields and returns the amount in minor units
func (uc *paymentUC) validateInitialize(req models.InitializePaymentRequest) (int64, error) {
	var fields []payments.FieldError

	if err := uc.validate.Var(req.Email, "required,email"); err != nil {
		fields = append(fields, invalidField("email", fieldValue(req.Email)))
	}

	amount, ok := toMinorUnits(req.Amount)
	if !ok {
		fields = append(fields, invalidField("amount", req.Amount))
	}

	if len(fields) > 0 {
		return 0, &payments.ValidationError{Fields: fields}
	}
	return amount, nil
}

// toMinorUnits accepts a JSON number or numeric string greater than zero and
// converts it to minor units as round(amount * 100) over float64, so 1.005
// becomes 100 and 0.001 becomes 0.
func toMinorUnits(raw interface{}) (int64, bool) {
	var amount float64

	switch v := raw.(type) {
	case float64:
		amount = v
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		amount = parsed.InexactFloat64()
	default:
		return 0, false
	}

	if math.IsNaN(amount) || amount <= 0 {
		return 0, false
	}

	scaled := amount * 100
	if math.IsInf(scaled, 0) {
		return 0, false
	}

	minor := decimal.NewFromFloat(scaled).Round(0)
	if minor.GreaterThan(maxMinorUnits) {
		return 0, false
	}
	return minor.IntPart(), true
}

func invalidField(path string, value interface{}) payments.FieldError {
	return payments.FieldError{
		Type:     "field",
		Value:    value,
		Msg:      "Invalid value",
		Path:     path,
		Location: "body",
	}
}

// fieldValue leaves an absent email out of the error detail
func fieldValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func (uc *paymentUC) logGatewayError(ctx context.Context, msg string, err error, fields ...logger.Field) {
	var gwErr *payments.GatewayError
	if errors.As(err, &gwErr) {
		fields = append(fields,
			logger.String("operation", gwErr.Op),
			logger.Int("status_code", gwErr.StatusCode),
			logger.String("body", utils.Truncate(gwErr.Body, maxLoggedBody)))
	}
	fields = append(fields, logger.Err(err))
	logger.ErrorCtx(ctx, msg, fields...)
}
