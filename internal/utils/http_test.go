package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorResponseHandler(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		errorMessage string
	}{
		{name: "Internal server error", statusCode: http.StatusInternalServerError, errorMessage: "Payment initialization failed"},
		{name: "Bad request", statusCode: http.StatusBadRequest, errorMessage: "Missing transaction reference"},
		{name: "Empty error message", statusCode: http.StatusNotFound, errorMessage: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := ErrorResponseHandler(c, tt.statusCode, tt.errorMessage)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, map[string]interface{}{"error": tt.errorMessage}, response)
		})
	}
}

func TestValidationErrorResponseHandler(t *testing.T) {
	c, rec := newContext()

	fields := []map[string]string{{"path": "email", "msg": "Invalid value"}}
	err := ValidationErrorResponseHandler(c, fields)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"path":"email","msg":"Invalid value"}]}`, rec.Body.String())
}

func TestDefaultMessages(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(echo.Context, string) error
		status   int
		expected string
	}{
		{name: "unauthorized", fn: UnauthorizedResponse, status: http.StatusUnauthorized, expected: "Unauthorized"},
		{name: "too many requests", fn: TooManyRequestsResponse, status: http.StatusTooManyRequests, expected: "Rate limit exceeded"},
		{name: "internal", fn: InternalServerErrorResponse, status: http.StatusInternalServerError, expected: "Internal server error"},
		{name: "unavailable", fn: ServiceUnavailableResponse, status: http.StatusServiceUnavailable, expected: "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			assert.NoError(t, tt.fn(c, ""))
			assert.Equal(t, tt.status, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.expected, response.Error)
		})
	}
}

func TestBadRequestResponse(t *testing.T) {
	c, rec := newContext()

	assert.NoError(t, BadRequestResponse(c, "Invalid input"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid input"}`, rec.Body.String())
}
