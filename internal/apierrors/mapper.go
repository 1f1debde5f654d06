package apierrors

import (
	"errors"
	"strings"

	analyticsProcessor "soundreach-server/internal/analytics/processor"
	artistProcessor "soundreach-server/internal/artist/processor"
	authProcessor "soundreach-server/internal/auth/processor"
	campaignProcessor "soundreach-server/internal/campaign/processor"
	financeProcessor "soundreach-server/internal/finance/processor"
	outreachProcessor "soundreach-server/internal/outreach/processor"
	"soundreach-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	// Map auth processor errors
	switch {
	case errors.Is(err, authProcessor.ErrEmailAlreadyExists):
		return Conflict(CodeEmailExists, "Email already exists")

	case errors.Is(err, authProcessor.ErrInvalidCredentials):
		return Unauthorized("Invalid email or password")

	case errors.Is(err, authProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")

	case errors.Is(err, authProcessor.ErrInvalidToken):
		return Unauthorized("Invalid or expired token")

	// Map campaign processor errors
	case errors.Is(err, campaignProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	case errors.Is(err, campaignProcessor.ErrInvalidCampaignStatus):
		return BadRequest(CodeInvalidStatus, "Invalid campaign status")

	case errors.Is(err, campaignProcessor.ErrInvalidCampaignType):
		return BadRequest(CodeInvalidType, "Invalid campaign type")

	case errors.Is(err, campaignProcessor.ErrInvalidDateRange):
		return BadRequest(CodeInvalidInput, "End date must be after start date")

	// Map artist processor errors
	case errors.Is(err, artistProcessor.ErrArtistNotFound):
		return NotFound(CodeArtistNotFound, "Artist not found")

	case errors.Is(err, artistProcessor.ErrInvalidVerificationStatus):
		return BadRequest(CodeInvalidStatus, "Invalid verification status")

	// Map outreach processor errors
	case errors.Is(err, outreachProcessor.ErrTemplateNotFound):
		return NotFound(CodeTemplateNotFound, "Email template not found")

	case errors.Is(err, outreachProcessor.ErrOutreachCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Outreach campaign not found")

	case errors.Is(err, outreachProcessor.ErrInvalidTemplateType):
		return BadRequest(CodeInvalidType, "Invalid template type")

	case errors.Is(err, outreachProcessor.ErrInvalidCampaignStatus):
		return BadRequest(CodeInvalidStatus, "Invalid outreach campaign status")

	case errors.Is(err, outreachProcessor.ErrInvalidSchedule):
		return BadRequest(CodeInvalidSchedule, "Invalid sending schedule")

	case errors.Is(err, outreachProcessor.ErrCampaignNotActive):
		return BadRequest(CodeInvalidStatus, "Outreach campaign is not active")

	case errors.Is(err, outreachProcessor.ErrNoTargetArtists):
		return BadRequest(CodeInvalidInput, "Outreach campaign has no target artists")

	case errors.Is(err, outreachProcessor.ErrMissingContactEmail):
		return BadRequest(CodeInvalidInput, "One or more target artists have no contact email")

	// Map finance processor errors
	case errors.Is(err, financeProcessor.ErrTransactionNotFound):
		return NotFound(CodeTransactionNotFound, "Transaction not found")

	case errors.Is(err, financeProcessor.ErrInvalidTransactionType):
		return BadRequest(CodeInvalidType, "Invalid transaction type")

	case errors.Is(err, financeProcessor.ErrInvalidTransactionStatus):
		return BadRequest(CodeInvalidStatus, "Invalid transaction status")

	case errors.Is(err, financeProcessor.ErrInvalidCurrency):
		return BadRequest(CodeInvalidInput, "Invalid currency code")

	case errors.Is(err, financeProcessor.ErrInvalidDateRange):
		return BadRequest(CodeInvalidInput, "Invalid date range")

	case errors.Is(err, financeProcessor.ErrTransactionNotPayable):
		return Conflict(CodeInvalidStatus, "Only pending income transactions can be paid")

	// Map analytics processor errors
	case errors.Is(err, analyticsProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	// Check for common external service errors by message content
	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	// Stripe/payment errors
	if strings.Contains(errMsg, "stripe") || strings.Contains(errMsg, "payment") {
		return ServiceUnavailable(
			CodePaymentProviderError,
			"Payment provider is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// Email service errors (Resend)
	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeMailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// AI service errors (OpenAI)
	if strings.Contains(errMsg, "openai") || strings.Contains(errMsg, "ai service") {
		return ServiceUnavailable(
			CodeAIServiceError,
			"AI service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// Default: Unknown error - return sanitized 500
	return InternalError(err)
}
