package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned alongside HTTP statuses.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeRateLimited        = "RATE_LIMITED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"

	CodeEmailExists          = "EMAIL_EXISTS"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeInvalidToken         = "INVALID_TOKEN"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeCampaignNotFound     = "CAMPAIGN_NOT_FOUND"
	CodeArtistNotFound       = "ARTIST_NOT_FOUND"
	CodeTemplateNotFound     = "TEMPLATE_NOT_FOUND"
	CodeTransactionNotFound  = "TRANSACTION_NOT_FOUND"
	CodeInvalidStatus        = "INVALID_STATUS"
	CodeInvalidType          = "INVALID_TYPE"
	CodeInvalidSchedule      = "INVALID_SCHEDULE"
	CodeMailServiceError     = "MAIL_SERVICE_ERROR"
	CodePaymentProviderError = "PAYMENT_PROVIDER_ERROR"
	CodeAIServiceError       = "AI_SERVICE_ERROR"
)

// APIError is the single error type crossing the handler boundary. Every
// failure raised anywhere in the system is converted to one of these before
// a response is written.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error // internal cause, never sent to clients
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// BadRequest builds a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized builds a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden builds a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// NotFound builds a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// Conflict builds a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// RateLimited builds a 429 error
func RateLimited(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimited, Message: message}
}

// ServiceUnavailable builds a 503 error wrapping the provider failure
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError builds a sanitized 500 error. The wrapped cause is logged
// at the response boundary but never exposed to clients.
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
