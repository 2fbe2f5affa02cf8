package models

import (
	"encoding/json"
	"time"
)

// DefaultCurrency is the only currency payments are initialized in
const DefaultCurrency = "ZAR"

// TransactionStatusPending is the status of a transaction before verification.
// Every later status is whatever the gateway reports.
const TransactionStatusPending = "pending"

// Transaction represents a payment transaction record
type Transaction struct {
	ID            int64     `json:"id" db:"id"`
	Reference     string    `json:"reference" db:"reference"`
	Amount        int64     `json:"amount" db:"amount"`
	Currency      string    `json:"currency" db:"currency"`
	Status        string    `json:"status" db:"status"`
	CustomerEmail string    `json:"customer_email" db:"customer_email"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// InitializePaymentRequest is the body of POST /initialize-payment.
// Amount is kept untyped so that both numbers and numeric strings are accepted.
type InitializePaymentRequest struct {
	Email  string      `json:"email"`
	Amount interface{} `json:"amount"`
}

// InitializePaymentResponse is returned after a successful initialization
type InitializePaymentResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
}

// PaymentSession is what the gateway returns when a payment is initialized
type PaymentSession struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
}

// PaymentVerification holds the gateway verification payload.
// Payload is the response body exactly as the gateway sent it.
type PaymentVerification struct {
	Reference string
	Status    string
	Payload   json.RawMessage
}

// PaymentInitializedEvent is published after a transaction row is created
type PaymentInitializedEvent struct {
	Reference     string    `json:"reference"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CustomerEmail string    `json:"customer_email"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// PaymentVerifiedEvent is published after a verification has been applied
type PaymentVerifiedEvent struct {
	Reference   string    `json:"reference"`
	Status      string    `json:"status"`
	RowsUpdated int64     `json:"rows_updated"`
	OccurredAt  time.Time `json:"occurred_at"`
}
