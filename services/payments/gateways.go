package payments

import (
	"context"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
)

// PaymentGW defines the outbound calls to the payment gateway
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Phuti24/Singleton-Payment-API/services/payments PaymentGW,EventGW
type PaymentGW interface {
	InitializePayment(ctx context.Context, email string, amount int64, currency, callbackURL string) (*models.PaymentSession, error)
	VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error)
}

// EventGW publishes transaction lifecycle events
type EventGW interface {
	PublishPaymentInitialized(ctx context.Context, event models.PaymentInitializedEvent) error
	PublishPaymentVerified(ctx context.Context, event models.PaymentVerifiedEvent) error
}
