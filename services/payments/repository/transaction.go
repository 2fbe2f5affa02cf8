package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/database"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/Phuti24/Singleton-Payment-API/services/payments"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

const pgUniqueViolation = "23505"

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		reference TEXT NOT NULL UNIQUE,
		amount INTEGER NOT NULL,
		currency TEXT NOT NULL,
		status TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)
`

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		reference TEXT NOT NULL UNIQUE,
		amount BIGINT NOT NULL,
		currency TEXT NOT NULL,
		status TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)
`

// TransactionRepo persists transactions in a single SQL table
type TransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a repository on top of an open connection.
// The schema dialect follows the connection's driver name.
func NewTransactionRepository(db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// CreateTable creates the transactions table if it does not exist yet
func (r *TransactionRepo) CreateTable(ctx context.Context) error {
	schema := sqliteSchema
	if r.db.DriverName() == database.DriverPostgres {
		schema = postgresSchema
	}

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return storeError("create table", err)
	}
	return nil
}

// Insert stores a new transaction. A duplicate reference yields a constraint StoreError.
func (r *TransactionRepo) Insert(ctx context.Context, tx *models.Transaction) error {
	query := r.db.Rebind(`
		INSERT INTO transactions (reference, amount, currency, status, customer_email)
		VALUES (?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		tx.Reference,
		tx.Amount,
		tx.Currency,
		tx.Status,
		tx.CustomerEmail,
	)
	if err != nil {
		return storeError("insert", err)
	}
	return nil
}

// UpdateStatusByReference sets the status of the matching transaction and
// refreshes updated_at. A reference with no row updates nothing and is not an error.
func (r *TransactionRepo) UpdateStatusByReference(ctx context.Context, reference, status string) (int64, error) {
	query := r.db.Rebind(`
		UPDATE transactions
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE reference = ?
	`)

	result, err := r.db.ExecContext(ctx, query, status, reference)
	if err != nil {
		return 0, storeError("update status", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, storeError("update status", fmt.Errorf("failed to get rows affected: %w", err))
	}
	return rows, nil
}

// ListAll returns every stored transaction
func (r *TransactionRepo) ListAll(ctx context.Context) ([]models.Transaction, error) {
	query := `
		SELECT id, reference, amount, currency, status, customer_email, created_at, updated_at
		FROM transactions
		ORDER BY id
	`

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query); err != nil {
		return nil, storeError("list", err)
	}
	return transactions, nil
}

func storeError(op string, err error) error {
	kind := payments.StoreErrorIO
	if isUniqueViolation(err) {
		kind = payments.StoreErrorConstraint
	}
	return &payments.StoreError{Kind: kind, Op: op, Err: err}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}
