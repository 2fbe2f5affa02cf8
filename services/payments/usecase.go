package payments

import (
	"context"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
)

// PaymentUC defines the interface for payment business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Phuti24/Singleton-Payment-API/services/payments PaymentUC
type PaymentUC interface {
	InitializePayment(ctx context.Context, req models.InitializePaymentRequest) (*models.InitializePaymentResponse, error)
	VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}
