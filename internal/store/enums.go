package store

// User ENUMs
const (
	UserRoleAdmin   = "admin"
	UserRoleManager = "manager"
	UserRoleUser    = "user"
)

// Campaign ENUMs
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

const (
	CampaignTypePromotion     = "promotion"
	CampaignTypeDiscovery     = "discovery"
	CampaignTypeOutreach      = "outreach"
	CampaignTypeCollaboration = "collaboration"
)

// Platform ENUMs
const (
	PlatformSoundCloud = "soundcloud"
	PlatformSpotify    = "spotify"
	PlatformYouTube    = "youtube"
	PlatformInstagram  = "instagram"
	PlatformTikTok     = "tiktok"
	PlatformTwitter    = "twitter"
)

// Artist ENUMs
const (
	VerificationStatusUnverified = "unverified"
	VerificationStatusPending    = "pending"
	VerificationStatusVerified   = "verified"
	VerificationStatusRejected   = "rejected"
)

// Email template ENUMs
const (
	TemplateTypeInitialOutreach       = "initial_outreach"
	TemplateTypeFollowUp              = "follow_up"
	TemplateTypeCollaborationProposal = "collaboration_proposal"
	TemplateTypeThankYou              = "thank_you"
	TemplateTypeRejectionResponse     = "rejection_response"
)

// Outreach campaign statuses share the campaign status values
const (
	OutreachStatusDraft     = CampaignStatusDraft
	OutreachStatusActive    = CampaignStatusActive
	OutreachStatusPaused    = CampaignStatusPaused
	OutreachStatusCompleted = CampaignStatusCompleted
	OutreachStatusCancelled = CampaignStatusCancelled
)

// Email record ENUMs
const (
	EmailStatusDraft     = "draft"
	EmailStatusScheduled = "scheduled"
	EmailStatusSent      = "sent"
	EmailStatusDelivered = "delivered"
	EmailStatusOpened    = "opened"
	EmailStatusClicked   = "clicked"
	EmailStatusReplied   = "replied"
	EmailStatusBounced   = "bounced"
	EmailStatusFailed    = "failed"
)

// Transaction ENUMs
const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusCancelled = "cancelled"
	TransactionStatusRefunded  = "refunded"
)

var validCampaignStatuses = map[string]bool{
	CampaignStatusDraft:     true,
	CampaignStatusActive:    true,
	CampaignStatusPaused:    true,
	CampaignStatusCompleted: true,
	CampaignStatusCancelled: true,
}

// IsValidCampaignStatus reports whether s is in the campaign status enum.
// Any enum value may be written at any time; there are no transition guards.
func IsValidCampaignStatus(s string) bool {
	return validCampaignStatuses[s]
}

var validCampaignTypes = map[string]bool{
	CampaignTypePromotion:     true,
	CampaignTypeDiscovery:     true,
	CampaignTypeOutreach:      true,
	CampaignTypeCollaboration: true,
}

// IsValidCampaignType reports whether t is in the campaign type enum
func IsValidCampaignType(t string) bool {
	return validCampaignTypes[t]
}

var validVerificationStatuses = map[string]bool{
	VerificationStatusUnverified: true,
	VerificationStatusPending:    true,
	VerificationStatusVerified:   true,
	VerificationStatusRejected:   true,
}

// IsValidVerificationStatus reports whether s is in the verification enum
func IsValidVerificationStatus(s string) bool {
	return validVerificationStatuses[s]
}

var validTemplateTypes = map[string]bool{
	TemplateTypeInitialOutreach:       true,
	TemplateTypeFollowUp:              true,
	TemplateTypeCollaborationProposal: true,
	TemplateTypeThankYou:              true,
	TemplateTypeRejectionResponse:     true,
}

// IsValidTemplateType reports whether t is in the template type enum
func IsValidTemplateType(t string) bool {
	return validTemplateTypes[t]
}

var validTransactionTypes = map[string]bool{
	TransactionTypeIncome:   true,
	TransactionTypeExpense:  true,
	TransactionTypeTransfer: true,
}

// IsValidTransactionType reports whether t is in the transaction type enum
func IsValidTransactionType(t string) bool {
	return validTransactionTypes[t]
}

var validTransactionStatuses = map[string]bool{
	TransactionStatusPending:   true,
	TransactionStatusCompleted: true,
	TransactionStatusFailed:    true,
	TransactionStatusCancelled: true,
	TransactionStatusRefunded:  true,
}

// IsValidTransactionStatus reports whether s is in the transaction status enum
func IsValidTransactionStatus(s string) bool {
	return validTransactionStatuses[s]
}

var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "CAD": true, "AUD": true, "JPY": true,
}

// IsValidCurrency reports whether c is a supported currency code
func IsValidCurrency(c string) bool {
	return validCurrencies[c]
}
