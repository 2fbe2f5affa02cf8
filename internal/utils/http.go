package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-validation error
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body of a 400 caused by invalid fields
type ValidationErrorResponse struct {
	Errors interface{} `json:"errors"`
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{Error: errorMessage})
}

// ValidationErrorResponseHandler sends a 400 listing every invalid field
func ValidationErrorResponseHandler(c echo.Context, errors interface{}) error {
	return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errors})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// TooManyRequestsResponse sends a 429 Too Many Requests response
func TooManyRequestsResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Rate limit exceeded"
	}
	return ErrorResponseHandler(c, http.StatusTooManyRequests, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}
