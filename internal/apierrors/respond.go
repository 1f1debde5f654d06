package apierrors

import (
	"runtime/debug"

	"soundreach-server/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// includeStack controls whether error responses carry stack traces.
// It is set once at boot from the loaded configuration and stays off
// in production.
var includeStack bool

// SetIncludeStack enables stack traces in error envelopes. Call once at boot
// with the inverse of the production flag.
func SetIncludeStack(enabled bool) {
	includeStack = enabled
}

// ErrorBody is the inner object of the error envelope.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// ErrorResponse is the JSON envelope returned to API clients for errors.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// RespondWithError converts any error to an APIError, logs it with request
// correlation fields, and writes the error envelope. This is the single
// formatting boundary for failures.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()
	apiErr := MapError(err)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.Err != nil {
		logger.Error(ctx, "API error response", apiErr.Err)
	} else {
		logger.Info(ctx, "API error response")
	}

	body := ErrorBody{Message: apiErr.Message, Code: apiErr.Code}
	if includeStack && apiErr.StatusCode >= 500 {
		body.Stack = string(debug.Stack())
	}
	c.JSON(apiErr.StatusCode, ErrorResponse{Error: body})
}
