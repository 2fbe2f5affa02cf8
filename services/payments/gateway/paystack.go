package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/logger"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/Phuti24/Singleton-Payment-API/services/payments"
)

const (
	// DefaultTimeout for gateway requests
	DefaultTimeout = 30 * time.Second
	// maxResponseBytes caps how much of a gateway response is read
	maxResponseBytes = 1 << 20
)

// PaystackClient calls the Paystack transaction API with a bearer secret key
type PaystackClient struct {
	client    *http.Client
	baseURL   string
	secretKey string
}

type initializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
	} `json:"data"`
}

// NewPaystackClient creates a gateway client from configuration
func NewPaystackClient(cfg models.PaystackConfig) *PaystackClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &PaystackClient{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		secretKey: cfg.SecretKey,
	}
}

// InitializePayment creates a payment session and returns its reference and authorization URL
func (c *PaystackClient) InitializePayment(ctx context.Context, email string, amount int64, currency, callbackURL string) (*models.PaymentSession, error) {
	const op = "initialize"

	body, err := c.doRequest(ctx, op, http.MethodPost, "/transaction/initialize", initializeRequest{
		Email:       email,
		Amount:      amount,
		Currency:    currency,
		CallbackURL: callbackURL,
	})
	if err != nil {
		return nil, err
	}

	var resp initializeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &payments.GatewayError{Op: op, StatusCode: http.StatusOK, Body: string(body), Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if resp.Data.Reference == "" || resp.Data.AuthorizationURL == "" {
		return nil, &payments.GatewayError{Op: op, StatusCode: http.StatusOK, Body: string(body), Err: errors.New("response is missing reference or authorization_url")}
	}

	return &models.PaymentSession{
		Reference:        resp.Data.Reference,
		AuthorizationURL: resp.Data.AuthorizationURL,
		AccessCode:       resp.Data.AccessCode,
	}, nil
}

// VerifyPayment fetches the verification payload for a reference.
// The returned Payload is the response body exactly as received.
func (c *PaystackClient) VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error) {
	const op = "verify"

	body, err := c.doRequest(ctx, op, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil)
	if err != nil {
		return nil, err
	}

	var resp verifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &payments.GatewayError{Op: op, StatusCode: http.StatusOK, Body: string(body), Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return &models.PaymentVerification{
		Reference: reference,
		Status:    resp.Data.Status,
		Payload:   json.RawMessage(body),
	}, nil
}

// doRequest performs the HTTP call and returns the body of a 2xx response.
// Anything else becomes a *payments.GatewayError carrying the upstream body.
func (c *PaystackClient) doRequest(ctx context.Context, op, method, endpoint string, payload interface{}) ([]byte, error) {
	reqURL := c.baseURL + endpoint

	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, &payments.GatewayError{Op: op, Err: fmt.Errorf("failed to marshal request body: %w", err)}
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, &payments.GatewayError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := logger.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	logger.Debug("Calling payment gateway",
		logger.String("operation", op),
		logger.String("method", method),
		logger.String("url", reqURL))

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &payments.GatewayError{Op: op, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, &payments.GatewayError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if len(body) > maxResponseBytes {
		return nil, &payments.GatewayError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       string(body[:maxResponseBytes]),
			Err:        fmt.Errorf("response exceeds %d bytes", maxResponseBytes),
		}
	}

	logger.Debug("Payment gateway responded",
		logger.String("operation", op),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &payments.GatewayError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
