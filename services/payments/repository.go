package payments

import (
	"context"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
)

// TransactionRepo defines the interface for transaction data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Phuti24/Singleton-Payment-API/services/payments TransactionRepo
type TransactionRepo interface {
	CreateTable(ctx context.Context) error
	Insert(ctx context.Context, tx *models.Transaction) error
	// UpdateStatusByReference returns the number of rows changed; zero is not an error.
	UpdateStatusByReference(ctx context.Context, reference, status string) (int64, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
}
